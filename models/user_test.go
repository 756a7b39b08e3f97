package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileIsComplete(t *testing.T) {
	complete := Profile{
		FullName:         "Ada Lovelace",
		Region:           "Europe",
		Location:         "London",
		BusinessIndustry: "Technology",
	}

	t.Run("Should be complete with all four attributes", func(t *testing.T) {
		p := complete
		assert.True(t, p.IsComplete())
	})

	t.Run("Should be incomplete when any attribute is missing", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*Profile)
		}{
			{"full name", func(p *Profile) { p.FullName = "" }},
			{"region", func(p *Profile) { p.Region = "" }},
			{"location", func(p *Profile) { p.Location = "" }},
			{"business industry", func(p *Profile) { p.BusinessIndustry = "" }},
		}
		for _, tc := range cases {
			p := complete
			tc.mutate(&p)
			assert.False(t, p.IsComplete(), "missing %s should be incomplete", tc.name)
		}
	})

	t.Run("Should treat a nil profile as incomplete", func(t *testing.T) {
		var p *Profile
		assert.False(t, p.IsComplete())
	})

	t.Run("Should not require payment status", func(t *testing.T) {
		p := complete
		p.PaymentStatus = ""
		assert.True(t, p.IsComplete())
	})
}

func TestValidRegion(t *testing.T) {
	for _, r := range Regions {
		assert.True(t, ValidRegion(r), r)
	}
	assert.False(t, ValidRegion("Atlantis"))
	assert.False(t, ValidRegion(""))
	assert.False(t, ValidRegion("europe"), "matching is case sensitive")
}

func TestValidIndustry(t *testing.T) {
	for _, i := range Industries {
		assert.True(t, ValidIndustry(i), i)
	}
	assert.False(t, ValidIndustry("Piracy"))
	assert.False(t, ValidIndustry(""))
}

func TestPlanDisplayName(t *testing.T) {
	t.Run("Should prefer the stored name", func(t *testing.T) {
		p := Plan{Name: "My Venture"}
		p.CompanyName = "Acme"
		assert.Equal(t, "My Venture", p.DisplayName())
	})

	t.Run("Should fall back to the company name", func(t *testing.T) {
		p := Plan{}
		p.CompanyName = "Acme"
		assert.Equal(t, "Acme", p.DisplayName())
	})

	t.Run("Should default when both are blank", func(t *testing.T) {
		p := Plan{}
		assert.Equal(t, "Untitled Plan", p.DisplayName())
	})
}

func TestPlanContentFieldAccess(t *testing.T) {
	t.Run("Should round-trip values through wizard keys", func(t *testing.T) {
		c := &PlanContent{}
		assert.True(t, c.SetField("theAsk", "funding request"))
		assert.Equal(t, "funding request", c.TheAsk)
		assert.Equal(t, "funding request", c.Field("theAsk"))
	})

	t.Run("Should report unknown keys", func(t *testing.T) {
		c := &PlanContent{}
		assert.False(t, c.SetField("notAField", "x"))
		assert.Equal(t, "", c.Field("notAField"))
	})
}
