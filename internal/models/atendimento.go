package models

// Atendimento is one recorded service interaction. Rows are append-only:
// there is no update or delete path, corrections get a new row.
//
// Data and Hora live in separate columns, never a combined timestamp. Both
// are ISO strings ("2006-01-02" / "15:04:05") validated at the handler
// boundary and stored as plain text: a native date/time column would come
// back from the postgres driver as time.Time and reserialize in RFC3339
// form, breaking the textual contract. ISO strings compare correctly as
// text, so range filters work unchanged on every dialect.
type Atendimento struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Entrada         string `json:"entrada" gorm:"type:varchar(100)"`
	Data            string `json:"data" gorm:"type:varchar(10);not null"`
	Hora            string `json:"hora" gorm:"type:varchar(8);not null"`
	CPF             string `json:"cpf" gorm:"column:cpf;type:varchar(20)"`
	RA              string `json:"ra" gorm:"column:ra;type:varchar(20)"`
	TipoSolicitante string `json:"tipo_solicitante" gorm:"type:varchar(100)"`
	NomeAluno       string `json:"nome_aluno" gorm:"type:varchar(150);not null"`
	Curso           string `json:"curso" gorm:"type:varchar(100)"`
	Atendente       string `json:"atendente" gorm:"type:varchar(150)"` // free text, not a Usuario reference
	Motivo          string `json:"motivo" gorm:"type:varchar(150)"`
	Descricao       string `json:"descricao" gorm:"type:text;not null"`
	ResolvidoFCR    string `json:"resolvido_fcr" gorm:"column:resolvido_fcr;type:varchar(10)"`
	AreaAcionada    string `json:"area_acionada" gorm:"type:varchar(100)"`
}
