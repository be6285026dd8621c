package catalogue_test

import (
	"errors"
	"testing"

	"github.com/empoderata/academy/internal/app/catalogue"
	"github.com/empoderata/academy/internal/domain/models"
)

func TestBySlug_Known(t *testing.T) {
	p, ok := catalogue.BySlug("contact-centre")
	if !ok {
		t.Fatal("expected contact-centre to be found")
	}
	if p.Name != "Contact Centre Support" {
		t.Errorf("Name: got %q, want %q", p.Name, "Contact Centre Support")
	}
	if p.SAQAID != 99687 {
		t.Errorf("SAQAID: got %d, want 99687", p.SAQAID)
	}
	if p.PriceKey != models.Price12Months {
		t.Errorf("PriceKey: got %q, want %q", p.PriceKey, models.Price12Months)
	}
}

func TestBySlug_Unknown(t *testing.T) {
	for _, slug := range []string{"", "transport-manager", "GENERAL_INQUIRY", "Contact-Centre"} {
		if _, ok := catalogue.BySlug(slug); ok {
			t.Errorf("BySlug(%q): expected no match", slug)
		}
	}
}

func TestTierPrice(t *testing.T) {
	tests := []struct {
		key  models.PriceKey
		want int64
		ok   bool
	}{
		{models.Price12Months, 38900, true},
		{models.Price18Months, 58350, true},
		{models.Price24Months, 77800, true},
		{"PRICE_36_MONTHS", 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, ok := catalogue.TierPrice(tt.key)
			if got != tt.want || ok != tt.ok {
				t.Errorf("TierPrice(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestEveryProgrammeHasATier(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range catalogue.Featured("") {
		if seen[p.ID] {
			t.Errorf("duplicate slug %q", p.ID)
		}
		seen[p.ID] = true
		if _, ok := catalogue.TierPrice(p.PriceKey); !ok {
			t.Errorf("%s: unknown price key %q", p.ID, p.PriceKey)
		}
	}
	if len(seen) != 9 {
		t.Errorf("expected 9 programmes, got %d", len(seen))
	}
}

func TestQuote_ContactCentreTenLearners(t *testing.T) {
	p, _ := catalogue.BySlug("contact-centre")
	est, err := catalogue.Quote(p, 10)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if est.PerLearner != 38900 {
		t.Errorf("PerLearner: got %d, want 38900", est.PerLearner)
	}
	if est.Total != 389000 {
		t.Errorf("Total: got %d, want 389000", est.Total)
	}
}

func TestQuote_TotalIsUnitTimesLearners(t *testing.T) {
	for _, p := range catalogue.Featured("") {
		unit, _ := catalogue.TierPrice(p.PriceKey)
		for _, n := range []int{1, 2, 37, 250, 500} {
			est, err := catalogue.Quote(p, n)
			if err != nil {
				t.Fatalf("%s x %d: %v", p.ID, n, err)
			}
			if est.Total != unit*int64(n) {
				t.Errorf("%s x %d: total %d, want %d", p.ID, n, est.Total, unit*int64(n))
			}
		}
	}
}

func TestQuote_LearnersOutOfRange(t *testing.T) {
	p, _ := catalogue.BySlug("truck-driver")
	for _, n := range []int{-1, 0, 501, 10000} {
		if _, err := catalogue.Quote(p, n); !errors.Is(err, catalogue.ErrLearnersOutOfRange) {
			t.Errorf("Quote(%d): got %v, want ErrLearnersOutOfRange", n, err)
		}
	}
}

func TestFeatured_TETAFirst(t *testing.T) {
	got := catalogue.Featured("")
	want := []string{
		"clearing-forwarding-agent",
		"freight-handler",
		"road-transport-manager",
		"supply-chain-practitioner",
		"truck-driver",
		"insurance-underwriter",
		"insurance-claims-assessor",
		"contact-centre",
		"project-manager",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d programmes, got %d", len(want), len(got))
	}
	for i, p := range got {
		if p.ID != want[i] {
			t.Errorf("position %d: got %q, want %q", i, p.ID, want[i])
		}
	}
	for i, p := range got[:5] {
		if p.SETA != "TETA" {
			t.Errorf("position %d: got SETA %q, want TETA", i, p.SETA)
		}
	}
}

func TestFeatured_CategoryFilter(t *testing.T) {
	if got := catalogue.Featured("learnership"); len(got) != 9 {
		t.Errorf("learnership filter: got %d, want 9", len(got))
	}
	if got := catalogue.Featured(models.CategoryMasterclass); len(got) != 0 {
		t.Errorf("masterclass filter: got %d, want 0", len(got))
	}
}

func TestLookups_ReturnCopies(t *testing.T) {
	p, _ := catalogue.BySlug("truck-driver")
	want := p.KeyModules[0]
	p.Name = "changed"
	p.KeyModules[0] = "changed"

	again, _ := catalogue.BySlug("truck-driver")
	if again.Name == "changed" || again.KeyModules[0] != want {
		t.Error("BySlug must not expose the backing catalogue")
	}

	list := catalogue.Featured("")
	for i := range list {
		if len(list[i].KeyModules) > 0 {
			list[i].KeyModules[0] = "changed"
		}
	}
	for _, p := range catalogue.Featured("") {
		if len(p.KeyModules) > 0 && p.KeyModules[0] == "changed" {
			t.Errorf("%s: Featured must not expose the backing catalogue", p.ID)
		}
	}
}
