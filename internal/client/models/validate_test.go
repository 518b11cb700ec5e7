package models

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validInput(now time.Time) *CampaignInput {
	return &CampaignInput{
		Title:       "Clean water",
		Description: "Wells for the village",
		Target:      big.NewInt(1),
		Deadline:    now.AddDate(0, 0, 30),
		Image:       "https://gateway.pinata.cloud/ipfs/Qm123",
	}
}

func TestCampaignInput_Validate_OK(t *testing.T) {
	now := time.Now()
	assert.Empty(t, validInput(now).Validate(now))
}

func TestCampaignInput_Validate_Problems(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*CampaignInput)
		field  string
	}{
		{"missing title", func(in *CampaignInput) { in.Title = "  " }, "title"},
		{"missing description", func(in *CampaignInput) { in.Description = "" }, "description"},
		{"zero target", func(in *CampaignInput) { in.Target = big.NewInt(0) }, "target"},
		{"nil target", func(in *CampaignInput) { in.Target = nil }, "target"},
		{"no deadline", func(in *CampaignInput) { in.Deadline = time.Time{} }, "deadline"},
		{"past deadline", func(in *CampaignInput) { in.Deadline = now.Add(-time.Hour) }, "deadline"},
		{"no image", func(in *CampaignInput) { in.Image = "" }, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(now)
			tt.mutate(in)
			problems := in.Validate(now)
			assert.Contains(t, problems, tt.field)
		})
	}
}

func TestMinDeadline(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC), MinDeadline(now))
}
