package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	tests := []struct {
		name      string
		builder   *SelectBuilder
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "eq and null with order and limit",
			builder: Select("id", "name").From("clubs").
				Where(Eq("league", "Premier League"), IsNull("deleted_at")).
				OrderBy("id").
				Limit(10),
			wantQuery: "SELECT id, name FROM clubs WHERE league = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10",
			wantArgs:  []any{"Premier League"},
		},
		{
			name: "in list numbering continues",
			builder: Select("id").From("players").
				Where(Gte("overall", 80), In("id", []string{"p-1", "p-2"})),
			wantQuery: "SELECT id FROM players WHERE overall >= $1 AND id IN ($2, $3)",
			wantArgs:  []any{80, "p-1", "p-2"},
		},
		{
			name:      "empty in matches nothing",
			builder:   Select("id").From("players").Where(In("id", []string{})),
			wantQuery: "SELECT id FROM players WHERE 1=0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := tc.builder.ToSQL()
			if err != nil {
				t.Fatalf("build select query: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tc.wantQuery, query)
			}
			if len(args) != len(tc.wantArgs) {
				t.Fatalf("unexpected args: %+v", args)
			}
			for i := range args {
				if args[i] != tc.wantArgs[i] {
					t.Fatalf("arg %d: want %v got %v", i, tc.wantArgs[i], args[i])
				}
			}
		})
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	if _, _, err := Select().From("players").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}
