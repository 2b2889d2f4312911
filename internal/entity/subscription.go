package entity

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

// Subscription - структура хранения подписок
type Subscription struct {
	// ID - идентификатор подписки в формате UUID, назначается при создании
	ID strfmt.UUID
	// ServiceName - название сервиса, предоставляющего подписку
	ServiceName string
	// Cost - стоимость за один расчётный период
	Cost decimal.Decimal
	// BillingCycle - периодичность списания
	BillingCycle BillingCycle
	// NextBillingDate - дата следующего списания (с точностью до дня, UTC)
	NextBillingDate time.Time
	// ReminderEnabled - нужно ли напоминание перед списанием
	ReminderEnabled bool
	// Notes - заметки пользователя
	Notes string
	// CreatedAt - время первого сохранения записи
	CreatedAt time.Time
}
