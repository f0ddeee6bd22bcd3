package models

// Usuario is a staff account. Login names are unique; the password hash is
// never serialized.
type Usuario struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	NomeCompleto string `json:"nome_completo" gorm:"type:varchar(150);not null"`
	Login        string `json:"usuario" gorm:"column:usuario;type:varchar(80);uniqueIndex;not null"`
	SenhaHash    string `json:"-" gorm:"type:varchar(256);not null"`
	Role         string `json:"role" gorm:"type:varchar(20);not null;default:'atendente'"` // admin, atendente
}
