package assoc_test

import (
	"errors"
	"testing"

	"gamereviews/assoc"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		belongsTo string
		hasMany   string
		want      assoc.Association
	}{
		{"game", "reviews", assoc.Association{
			ParentTable: "games", ChildTable: "reviews", ForeignKey: "game_id", PrimaryKey: "id",
		}},
		{"Game", "Reviews", assoc.Association{
			ParentTable: "games", ChildTable: "reviews", ForeignKey: "game_id", PrimaryKey: "id",
		}},
		{"category", "games", assoc.Association{
			ParentTable: "categories", ChildTable: "games", ForeignKey: "category_id", PrimaryKey: "id",
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.belongsTo+"/"+tt.hasMany, func(t *testing.T) {
			t.Parallel()

			got, err := assoc.Resolve(tt.belongsTo, tt.hasMany)
			if err != nil {
				t.Fatalf("Resolve(%q, %q) returned error: %v", tt.belongsTo, tt.hasMany, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q, %q) = %+v, want %+v", tt.belongsTo, tt.hasMany, got, tt.want)
			}
		})
	}
}

func TestResolveConventionMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		belongsTo string
		hasMany   string
	}{
		{"plural belongs-to", "games", "reviews"},
		{"singular has-many", "game", "review"},
		{"empty belongs-to", "", "reviews"},
		{"empty has-many", "game", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := assoc.Resolve(tt.belongsTo, tt.hasMany)
			if !errors.Is(err, assoc.ErrConvention) {
				t.Errorf("Resolve(%q, %q) error = %v, want ErrConvention", tt.belongsTo, tt.hasMany, err)
			}
		})
	}
}

func TestMustResolvePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustResolve with mismatched declarations did not panic")
		}
	}()
	assoc.MustResolve("games", "reviews")
}
