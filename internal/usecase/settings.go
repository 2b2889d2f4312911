package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	currencyKey     = "currency"
	DefaultCurrency = "USD"
)

var supportedCurrencies = []string{"USD", "EUR", "BHD", "SAR"}

// Settings manages stored user preferences
type Settings struct {
	Sr SettingsRepository
}

// NewSettings creates a settings use case with the given repository
func NewSettings(sr SettingsRepository) *Settings {
	return &Settings{Sr: sr}
}

// Currency returns the preferred currency code, DefaultCurrency when none was saved
func (s *Settings) Currency(ctx context.Context) (string, error) {
	v, err := s.Sr.GetSetting(ctx, currencyKey)
	if errors.Is(err, ErrSettingNotFound) {
		return DefaultCurrency, nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

// SetCurrency validates and stores the preferred currency code
func (s *Settings) SetCurrency(ctx context.Context, currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !slices.Contains(supportedCurrencies, currency) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}
	if err := s.Sr.SaveSetting(ctx, currencyKey, currency); err != nil {
		return "", err
	}
	return currency, nil
}
