package value

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	MinTrendScore = 1
	MaxTrendScore = 10
	MaxAge        = 100

	DefaultTrendScore      = 5
	DefaultCreativityScore = 5
)

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Criteria параметры подбора. Все шесть полей заполнены.
type Criteria struct {
	Age         int       `json:"age" validate:"gte=0,lte=100"`
	Recipient   Recipient `json:"recipient" validate:"required"`
	Budget      float64   `json:"budget" validate:"gte=0"`
	Marketplace bool      `json:"marketplace"`
	TrendScore  int       `json:"trend_score" validate:"gte=1,lte=10"`
	Consumable  bool      `json:"consumable"`
}

func (c Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate criteria: %w", err)
	}
	return nil
}

// Draft частично заполненные критерии, пока идёт диалог.
type Draft struct {
	Age         *int       `json:"age,omitempty"`
	Recipient   *Recipient `json:"recipient,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Marketplace *bool      `json:"marketplace,omitempty"`
	TrendScore  *int       `json:"trend_score,omitempty"`
	Consumable  *bool      `json:"consumable,omitempty"`
}

// Complete true, когда заполнены все поля.
func (d Draft) Complete() bool {
	return d.Age != nil && d.Recipient != nil && d.Budget != nil &&
		d.Marketplace != nil && d.TrendScore != nil && d.Consumable != nil
}

// Criteria собирает критерии. Незаполненный черновик даёт ok=false.
func (d Draft) Criteria() (Criteria, bool) {
	if !d.Complete() {
		return Criteria{}, false
	}

	return Criteria{
		Age:         *d.Age,
		Recipient:   *d.Recipient,
		Budget:      *d.Budget,
		Marketplace: *d.Marketplace,
		TrendScore:  *d.TrendScore,
		Consumable:  *d.Consumable,
	}, true
}
