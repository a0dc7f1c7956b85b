package repository

import (
	"reflect"
	"testing"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants"

	"github.com/google/uuid"
)

func TestBuildLeadFilterEmpty(t *testing.T) {
	where, args, argIdx := buildLeadFilter(ListFilter{})

	if where != "TRUE" {
		t.Fatalf("where = %q, want %q", where, "TRUE")
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
	if argIdx != 1 {
		t.Fatalf("argIdx = %d, want 1", argIdx)
	}
}

func TestBuildLeadFilterGlobalScopeHasNoTenantClause(t *testing.T) {
	where, args, _ := buildLeadFilter(ListFilter{Scope: tenants.GlobalScope()})

	if where != "TRUE" {
		t.Fatalf("where = %q, want %q", where, "TRUE")
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
}

func TestBuildLeadFilterTenantScope(t *testing.T) {
	tenantID := uuid.New()

	where, args, argIdx := buildLeadFilter(ListFilter{Scope: tenants.TenantScope(tenantID)})

	if where != "TRUE AND tenant_id = $1" {
		t.Fatalf("where = %q", where)
	}
	if !reflect.DeepEqual(args, []interface{}{tenantID}) {
		t.Fatalf("args = %v, want [%s]", args, tenantID)
	}
	if argIdx != 2 {
		t.Fatalf("argIdx = %d, want 2", argIdx)
	}
}

func TestBuildLeadFilterSearchSpansFourFields(t *testing.T) {
	where, args, _ := buildLeadFilter(ListFilter{Search: "acme"})

	want := "TRUE AND (first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR company ILIKE $1)"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"%acme%"}) {
		t.Fatalf("args = %v, want [%%acme%%]", args)
	}
}

func TestBuildLeadFilterAllCriteria(t *testing.T) {
	tenantID := uuid.New()
	industry := scoring.IndustryTech
	urgency := scoring.UrgencyImmediately
	minScore := 70

	where, args, argIdx := buildLeadFilter(ListFilter{
		Scope:    tenants.TenantScope(tenantID),
		Search:   "acme",
		Industry: &industry,
		Urgency:  &urgency,
		MinScore: &minScore,
	})

	want := "TRUE" +
		" AND tenant_id = $1" +
		" AND (first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR company ILIKE $2)" +
		" AND industry = $3" +
		" AND urgency = $4" +
		" AND score >= $5"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}

	wantArgs := []interface{}{tenantID, "%acme%", industry, urgency, minScore}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}

	// Stats appends its threshold argument after the filter's, so the
	// returned index must point one past the last placeholder.
	if argIdx != 6 {
		t.Fatalf("argIdx = %d, want 6", argIdx)
	}
}

func TestBuildLeadFilterPartialCombinations(t *testing.T) {
	industry := scoring.IndustryFinance
	minScore := 50

	tests := []struct {
		name     string
		filter   ListFilter
		want     string
		wantArgs []interface{}
	}{
		{
			"industry only",
			ListFilter{Industry: &industry},
			"TRUE AND industry = $1",
			[]interface{}{industry},
		},
		{
			"min score only",
			ListFilter{MinScore: &minScore},
			"TRUE AND score >= $1",
			[]interface{}{minScore},
		},
		{
			"search with min score",
			ListFilter{Search: "jane", MinScore: &minScore},
			"TRUE AND (first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR company ILIKE $1) AND score >= $2",
			[]interface{}{"%jane%", minScore},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, _ := buildLeadFilter(tt.filter)
			if where != tt.want {
				t.Fatalf("where = %q, want %q", where, tt.want)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Fatalf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
