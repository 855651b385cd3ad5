package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"apptchat/models"
)

// intentPayload is the JSON object the prompt asks the model for.
type intentPayload struct {
	Action  string `json:"action"`
	Name    string `json:"name" validate:"max=200"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time    string `json:"time" validate:"omitempty,datetime=15:04"`
	NewDate string `json:"new_date" validate:"omitempty,datetime=2006-01-02"`
	NewTime string `json:"new_time" validate:"omitempty,datetime=15:04"`
}

func (p intentPayload) intent() models.Intent {
	return models.Intent{
		Action:  models.ParseAction(p.Action),
		Name:    p.Name,
		Date:    p.Date,
		Time:    p.Time,
		NewDate: p.NewDate,
		NewTime: p.NewTime,
	}
}

func decodePayload(text string) (intentPayload, error) {
	var payload intentPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &payload); err != nil {
		return intentPayload{}, fmt.Errorf("decode intent: %w", err)
	}
	return payload, nil
}

// JSONParser accepts any JSON object with the expected keys. Missing keys are
// blank and an unrecognised action reads as unknown.
type JSONParser struct{}

func (JSONParser) Parse(text string) (models.Intent, error) {
	payload, err := decodePayload(text)
	if err != nil {
		return models.Intent{}, err
	}
	return payload.intent(), nil
}

// StrictParser additionally rejects replies whose dates or times are not ISO
// formatted, or that omit the slot an actionable intent needs.
type StrictParser struct {
	validate *validator.Validate
}

func NewStrictParser() *StrictParser {
	return &StrictParser{validate: validator.New(validator.WithRequiredStructEnabled())}
}

var errMissingSlot = errors.New("intent is missing its slot")

func (p *StrictParser) Parse(text string) (models.Intent, error) {
	payload, err := decodePayload(text)
	if err != nil {
		return models.Intent{}, err
	}
	if err := p.validate.Struct(payload); err != nil {
		return models.Intent{}, fmt.Errorf("validate intent: %w", err)
	}

	intent := payload.intent()
	switch intent.Action {
	case models.ActionBook, models.ActionCancel:
		if intent.Date == "" || intent.Time == "" {
			return models.Intent{}, errMissingSlot
		}
	case models.ActionReschedule:
		if intent.Date == "" || intent.Time == "" || intent.NewDate == "" || intent.NewTime == "" {
			return models.Intent{}, errMissingSlot
		}
	case models.ActionUnknown:
	}
	return intent, nil
}
