package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"apptchat/mocks"
	"apptchat/models"
)

func TestDefaultIntentExtractor_Extract(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		description string
		output      string
		genErr      error
		want        models.Intent
	}{
		{
			"Should return the parsed intent",
			`{"action":"cancel","name":"Alice","date":"2024-05-01","time":"10:00"}`,
			nil,
			models.Intent{Action: models.ActionCancel, Name: "Alice", Date: "2024-05-01", Time: "10:00"},
		},
		{"Should collapse generator errors", "", ErrNoCandidates, models.UnknownIntent()},
		{"Should collapse network errors", "", errors.New("dial tcp: connection refused"), models.UnknownIntent()},
		{"Should collapse parse errors", "not json", nil, models.UnknownIntent()},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			generator := mocks.NewMockGenerator(ctrl)
			generator.EXPECT().
				Generate(ctx, gomock.Cond(func(prompt any) bool {
					return strings.Contains(prompt.(string), `User message: "cancel Alice at 10"`)
				})).
				Return(tt.output, tt.genErr).
				Times(1)

			extractor := NewIntentExtractor(generator, JSONParser{}, zap.NewNop())
			req.Equal(tt.want, extractor.Extract(ctx, "cancel Alice at 10"))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := require.New(t)
	prompt := BuildPrompt(`say "hi"`)

	req.Contains(prompt, `User message: "say \"hi\""`)
	for _, key := range []string{`"action"`, `"name"`, `"date"`, `"time"`, `"new_date"`, `"new_time"`} {
		req.Contains(prompt, key)
	}
	req.Contains(prompt, "Return only the JSON object.")
}
