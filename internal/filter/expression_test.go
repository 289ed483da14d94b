package filter

import (
	"testing"
)

// mockCtx implements Context for tests.
type mockCtx struct {
	data map[string]any
}

func (m *mockCtx) Resolve(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	v, ok := m.data[path[0]]
	if !ok || len(path) == 1 {
		return v, ok
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return (&mockCtx{data: sub}).Resolve(path[1:])
}

func ctx(kv ...any) *mockCtx {
	m := &mockCtx{data: make(map[string]any)}
	for i := 0; i < len(kv)-1; i += 2 {
		m.data[kv[i].(string)] = kv[i+1]
	}
	return m
}

type evalCase struct {
	name    string
	expr    string
	ctx     Context
	want    bool
	wantErr bool
}

func TestEvaluate(t *testing.T) {
	cases := []evalCase{
		// Numeric comparisons
		{
			name: "gt true",
			expr: "amount_due > 1000",
			ctx:  ctx("amount_due", float64(1500)),
			want: true,
		},
		{
			name: "gt false",
			expr: "amount_due > 1000",
			ctx:  ctx("amount_due", float64(500)),
			want: false,
		},
		{
			name: "gte equal",
			expr: "amount_due >= 1000",
			ctx:  ctx("amount_due", float64(1000)),
			want: true,
		},
		{
			name: "lt true",
			expr: "amount_due < 100",
			ctx:  ctx("amount_due", float64(50)),
			want: true,
		},
		// String equality
		{
			name: "eq string true",
			expr: `status == "draft"`,
			ctx:  ctx("status", "draft"),
			want: true,
		},
		{
			name: "eq string false",
			expr: `status == "draft"`,
			ctx:  ctx("status", "paid"),
			want: false,
		},
		{
			name: "neq string",
			expr: `status != "draft"`,
			ctx:  ctx("status", "paid"),
			want: true,
		},
		// Boolean
		{
			name: "bool eq true",
			expr: "livemode == true",
			ctx:  ctx("livemode", true),
			want: true,
		},
		{
			name: "bool eq false literal",
			expr: "livemode == false",
			ctx:  ctx("livemode", true),
			want: false,
		},
		// AND / OR
		{
			name: "AND both true",
			expr: `status == "open" AND amount_due > 500`,
			ctx:  ctx("status", "open", "amount_due", float64(1000)),
			want: true,
		},
		{
			name: "AND first false",
			expr: `status == "open" AND amount_due > 500`,
			ctx:  ctx("status", "void", "amount_due", float64(1000)),
			want: false,
		},
		{
			name: "OR first true",
			expr: `status == "open" OR amount_due > 500`,
			ctx:  ctx("status", "void", "amount_due", float64(1000)),
			want: true,
		},
		{
			name: "OR both false",
			expr: `status == "open" OR amount_due > 500`,
			ctx:  ctx("status", "void", "amount_due", float64(10)),
			want: false,
		},
		// NOT
		{
			name: "NOT true",
			expr: `NOT amount_due > 1000`,
			ctx:  ctx("amount_due", float64(500)),
			want: true,
		},
		// Parentheses
		{
			name: "grouped or",
			expr: `(status == "open" OR status == "draft") AND amount_due > 100`,
			ctx:  ctx("status", "draft", "amount_due", float64(500)),
			want: true,
		},
		// contains
		{
			name: "contains true",
			expr: `event_type contains "dispute"`,
			ctx:  ctx("event_type", "charge.dispute.created"),
			want: true,
		},
		{
			name: "contains false",
			expr: `event_type contains "dispute"`,
			ctx:  ctx("event_type", "charge.succeeded"),
			want: false,
		},
		// matches (regex)
		{
			name: "matches true",
			expr: `customer_email matches ".*@example\\.com"`,
			ctx:  ctx("customer_email", "ada@example.com"),
			want: true,
		},
		{
			name: "matches false",
			expr: `customer_email matches ".*@example\\.com"`,
			ctx:  ctx("customer_email", "ada@other.com"),
			want: false,
		},
		// Nested path
		{
			name: "nested field",
			expr: "data.amount_due >= 100000",
			ctx:  ctx("data", map[string]any{"amount_due": float64(125000)}),
			want: true,
		},
		// Error cases
		{
			name:    "unknown field",
			expr:    "missing > 10",
			ctx:     ctx("amount_due", float64(100)),
			wantErr: true,
		},
		{
			name:    "numeric op on string",
			expr:    "status > 10",
			ctx:     ctx("status", "draft"),
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ast, err := Parse(tc.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.expr, err)
			}
			got, err := Evaluate(ast, tc.ctx)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil (result=%v)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tc.expr, got, tc.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		`"unterminated`,
		`amount_due 1000`, // missing operator
		`livemode = true`, // single = is not an operator
		`status ! "open"`, // bare ! is not an operator
		`status == "open" extra`,
		`(status == "open"`, // unbalanced paren
		``,                  // empty
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Errorf("expected parse error for %q, got nil", expr)
			}
		})
	}
}
