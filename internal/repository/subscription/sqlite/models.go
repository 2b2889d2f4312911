package sqlite

import "time"

type subscriptionRow struct {
	Seq             int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	ID              string    `gorm:"column:id;type:text;not null;uniqueIndex"`
	ServiceName     string    `gorm:"column:service_name;type:text;not null"`
	Cost            string    `gorm:"column:cost;type:text;not null"`
	BillingCycle    string    `gorm:"column:billing_cycle;type:text;not null"`
	NextBillingDate string    `gorm:"column:next_billing_date;type:text;not null;index"`
	ReminderEnabled bool      `gorm:"column:reminder_enabled;not null;default:false"`
	Notes           string    `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
}

func (subscriptionRow) TableName() string { return "subscriptions" }

type settingRow struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (settingRow) TableName() string { return "settings" }
