package models

// Small ERP lookup tables joined into reports.

type InvoiceType struct {
	InTypeID    int    `gorm:"column:in_type_id;primaryKey" json:"in_type_id"`
	InTypeName  string `gorm:"column:in_type_name" json:"in_type_name"`
	InTypeConst int    `gorm:"column:in_type_const" json:"in_type_const"`
}

func (InvoiceType) TableName() string { return "tbl_invoice_type" }

type Currency struct {
	CurLstID   int     `gorm:"column:cur_lst_id;primaryKey" json:"cur_lst_id"`
	CurLstName string  `gorm:"column:cur_lst_name" json:"cur_lst_name"`
	CurLstCode string  `gorm:"column:cur_lst_code" json:"cur_lst_code"`
	CurLstRate float64 `gorm:"column:cur_lst_rate" json:"cur_lst_rate"`
}

func (Currency) TableName() string { return "tbl_currency" }

type Agent struct {
	AgID   int    `gorm:"column:ag_id;primaryKey" json:"ag_id"`
	AgName string `gorm:"column:ag_name" json:"ag_name"`
}

func (Agent) TableName() string { return "tbl_agent" }

type Item struct {
	ItID   int64  `gorm:"column:it_id;primaryKey" json:"it_id"`
	ItName string `gorm:"column:it_name" json:"it_name"`
}

func (Item) TableName() string { return "tbl_item" }

type Account struct {
	AcID   int64  `gorm:"column:ac_id;primaryKey" json:"ac_id"`
	AcName string `gorm:"column:ac_name" json:"ac_name"`
}

func (Account) TableName() string { return "tbl_account" }

// SalesUser is the ERP-side user who booked an invoice, only used for the
// top-users dashboard. Not the same thing as the auth User.
type SalesUser struct {
	UsID       int64  `gorm:"column:us_id;primaryKey" json:"us_id"`
	UsFullName string `gorm:"column:us_full_name" json:"us_full_name"`
}

func (SalesUser) TableName() string { return "tbl_users" }
