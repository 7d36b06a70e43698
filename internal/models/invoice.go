package models

import "time"

// Invoice mirrors the ERP's sales invoice header table. in_list_type_const 102
// marks sales invoices, which is the classification every report filters on.
type Invoice struct {
	InListID             int64     `gorm:"column:in_list_id;primaryKey" json:"in_list_id"`
	InListNumber         string    `gorm:"column:in_list_number" json:"in_list_number"`
	InListDatetime       time.Time `gorm:"column:in_list_datetime;index" json:"in_list_datetime"`
	InListDatetimeSupply time.Time `gorm:"column:in_list_datetime_supply" json:"in_list_datetime_supply"`
	InListDesc           string    `gorm:"column:in_list_desc" json:"in_list_desc"`
	InListTotal          float64   `gorm:"column:in_list_total" json:"in_list_total"`
	InListDiscountVal    float64   `gorm:"column:in_list_discount_val" json:"in_list_discount_val"`
	InListNet            float64   `gorm:"column:in_list_net" json:"in_list_net"`
	InListPayment        float64   `gorm:"column:in_list_payment" json:"in_list_payment"`
	InListRemind         int       `gorm:"column:in_list_remind" json:"in_list_remind"`
	InListAccCust        int64     `gorm:"column:in_list_acc_cust;index" json:"in_list_acc_cust"`
	InListAgentID        int       `gorm:"column:in_list_agent_id" json:"in_list_agent_id"`
	InListCurrencyID     int       `gorm:"column:in_list_currency_id" json:"in_list_currency_id"`
	InListTypeID         int       `gorm:"column:in_list_type_id;index" json:"in_list_type_id"`
	InListTypeConst      int       `gorm:"column:in_list_type_const;index" json:"in_list_type_const"`
	InListPaymentType    int       `gorm:"column:in_list_payment_type" json:"in_list_payment_type"`
	InListOldYear        int       `gorm:"column:in_list_old_year" json:"in_list_old_year"`
	InListXeUserAd       int64     `gorm:"column:in_list_xe_user_ad" json:"in_list_xe_user_ad"`
	InListCustName       string    `gorm:"column:in_list_cust_name" json:"in_list_cust_name"`
	InListCustCell       string    `gorm:"column:in_list_cust_cell" json:"in_list_cust_cell"`
}

func (Invoice) TableName() string { return "tbl_invoice_list" }

type InvoiceLine struct {
	InDetID          int64   `gorm:"column:in_det_id;primaryKey" json:"in_det_id"`
	InDetListID      int64   `gorm:"column:in_det_list_id;index" json:"in_det_list_id"`
	InDetItemID      int64   `gorm:"column:in_det_item_id;index" json:"in_det_item_id"`
	InDetCurrencyID  int     `gorm:"column:in_det_currency_id" json:"in_det_currency_id"`
	InDetQty         float64 `gorm:"column:in_det_qty" json:"in_det_qty"`
	InDetPrice       float64 `gorm:"column:in_det_price" json:"in_det_price"`
	InDetDiscountVal float64 `gorm:"column:in_det_discount_val" json:"in_det_discount_val"`
	InDetTotalVal    float64 `gorm:"column:in_det_total_val" json:"in_det_total_val"`
}

func (InvoiceLine) TableName() string { return "tbl_invoice_det" }
