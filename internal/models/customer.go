package models

type Customer struct {
	CuID      int64  `gorm:"column:cu_id;primaryKey" json:"cu_id"`
	CuAccID   int64  `gorm:"column:cu_acc_id;index" json:"cu_acc_id"`
	CuName    string `gorm:"column:cu_name" json:"cu_name"`
	CuCompany string `gorm:"column:cu_company" json:"cu_company"`
	CuAddress string `gorm:"column:cu_address" json:"cu_address"`
	CuMobile1 string `gorm:"column:cu_mobile1" json:"cu_mobile1"`
	CuMobile2 string `gorm:"column:cu_mobile2" json:"cu_mobile2"`
	CuEmail   string `gorm:"column:cu_email" json:"cu_email"`
	// 0 = customer, 1 = supplier
	CuType int `gorm:"column:cu_type;index" json:"cu_type"`
}

func (Customer) TableName() string { return "tbl_cust" }
