package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/lahman/internal/store"
)

// The constraint suite runs unchanged against every engine: in-memory
// SQLite in the default test run, MySQL and PostgreSQL under the docker tag.

func insertRow[T store.Model](t *testing.T, db *store.Database, row *T) error {
	t.Helper()
	repo, err := New[T](db)
	require.NoError(t, err)
	return repo.Insert(context.Background(), row)
}

func mustInsert[T store.Model](t *testing.T, db *store.Database, row *T) {
	t.Helper()
	require.NoError(t, insertRow(t, db, row))
}

func i16(v int16) sql.NullInt16 { return sql.NullInt16{Int16: v, Valid: true} }

func str(v string) sql.NullString { return sql.NullString{String: v, Valid: true} }

func f64(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

// seed writes the parent rows every fixture depends on.
func seed(t *testing.T, db *store.Database) {
	t.Helper()
	mustInsert(t, db, &store.Person{PlayerID: "ruthba01", NameFirst: str("Babe"), NameLast: str("Ruth")})
	mustInsert(t, db, &store.Person{PlayerID: "gehrilo01", NameFirst: str("Lou"), NameLast: str("Gehrig")})
	mustInsert(t, db, &store.League{LgID: "AL", Name: "American League", Active: "Y"})
	mustInsert(t, db, &store.League{LgID: "NL", Name: "National League", Active: "Y"})
	mustInsert(t, db, &store.Team{TeamID: "NYA", YearID: 1919, LgID: str("AL"), Name: str("New York Yankees")})
	mustInsert(t, db, &store.Team{TeamID: "BRO", YearID: 1920, LgID: str("NL"), Name: str("Brooklyn Robins")})
	mustInsert(t, db, &store.Park{ParkID: "NYC16", Alias: "", Name: "Yankee Stadium I", City: "New York", State: "NY", Country: "US"})
	mustInsert(t, db, &store.School{SchoolID: "columbia", Name: "Columbia University", City: "New York", State: "NY", Country: "USA"})
}

// fixture writes one valid row of a table. The row is fully determined by
// year and player, so calling insert twice with the same arguments collides
// on the table's natural key.
type fixture struct {
	table string
	// constraint is the name expected on a duplicate. Empty skips the check.
	constraint string
	// player reports whether the row references people.
	player bool
	insert func(t *testing.T, db *store.Database, year int16, player string) error
}

func fixtures() []fixture {
	return []fixture{
		{"people", store.PrimaryKeyConstraint, false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.Person{PlayerID: fmt.Sprintf("p%d", year)})
		}},
		{"leagues", store.PrimaryKeyConstraint, false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.League{LgID: fmt.Sprintf("%02d", year%100), Name: "Federal League", Active: "N"})
		}},
		{"divisions", "uq_div_lg", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.Division{DivID: fmt.Sprintf("%02d", year%100), LgID: "AL", Name: "East", Active: "Y"})
		}},
		{"teams", "uq_teams", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.Team{TeamID: "NYA", YearID: year, LgID: str("AL")})
		}},
		// A repeated row collides on both the key and uq_entry; engines
		// differ in which they report.
		{"parks", "", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.Park{ParkID: fmt.Sprintf("P%d", year), Name: fmt.Sprintf("Park %d", year), City: "Boston", State: "MA", Country: "US"})
		}},
		{"schools", store.PrimaryKeyConstraint, false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.School{SchoolID: fmt.Sprintf("s%d", year), Name: "Fordham", City: "Bronx", State: "NY", Country: "USA"})
		}},
		{"batting", "uq_player_year_team_stint", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Batting{PlayerID: player, YearID: year, TeamID: "NYA", Stint: 1,
				BattingLine: store.BattingLine{G: i16(142), AB: i16(458), HR: i16(54)}})
		}},
		{"battingpost", "uq_player_year_team_round", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.BattingPost{PlayerID: player, YearID: year, TeamID: "NYA", Round: "WS"})
		}},
		{"pitching", "uq_player_year_team_stint", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Pitching{PlayerID: player, YearID: year, TeamID: "NYA", Stint: 1,
				PitchingLine: store.PitchingLine{W: i16(1), ERA: f64(4.5)}})
		}},
		{"pitchingpost", "uq_player_year_team_round", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.PitchingPost{PlayerID: player, YearID: year, TeamID: "NYA", Round: "WS"})
		}},
		{"fielding", "uq_player_team_year_stint_position", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Fielding{PlayerID: player, YearID: year, TeamID: "NYA", Stint: 1, Position: str("OF")})
		}},
		{"fieldingpost", "uq_player_team_year_round_position", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.FieldingPost{PlayerID: player, YearID: year, TeamID: "NYA", Round: "WS", Position: str("RF")})
		}},
		{"appearances", "uq_player_year_team", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Appearances{PlayerID: player, YearID: year, TeamID: "NYA", GAll: i16(142)})
		}},
		{"managers", "uq_player_year_team_inseason", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Manager{PlayerID: player, YearID: year, TeamID: "NYA", InSeason: 1, PlyrMgr: str("Y")})
		}},
		{"salaries", "uq_salary_player_year_team", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Salary{PlayerID: player, YearID: year, TeamID: "NYA", Salary: f64(20000)})
		}},
		{"awards", "uq_award_year_player_lg", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Award{AwardID: "MVP", YearID: year, PlayerID: player, LgID: "AL"})
		}},
		{"awardsshare", "uq_award_year_player_lg", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.AwardShare{AwardID: "MVP", YearID: year, PlayerID: player, LgID: "AL", PointsWon: f64(63)})
		}},
		{"halloffame", "uq_halloffame", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.HallOfFame{PlayerID: player, YearID: year, VotedBy: "BBWAA", Inducted: str("Y")})
		}},
		{"allstarfull", "uq_allstarfull", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.AllstarFull{PlayerID: player, LgID: "AL", TeamID: "NYA", YearID: year})
		}},
		{"draft", "uq_draft", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.Draft{PlayerID: player, YearID: year, TeamID: "NYA"})
		}},
		{"nohitters", "uq_nohitters", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.NoHitter{PlayerID: player, YearID: year, TeamID: "NYA", Date: fmt.Sprintf("%d06010", year), Type: "I"})
		}},
		{"collegeplaying", "uq_player_school_year", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.CollegePlaying{PlayerID: player, SchoolID: str("columbia"), YearID: i16(year)})
		}},
		{"careerwarleaders", "uq_careerwarleaders", true, func(t *testing.T, db *store.Database, _ int16, player string) error {
			return insertRow(t, db, &store.CareerWarLeader{PlayerID: player, WAR: 182.6})
		}},
		{"seasonwarleaders", "uq_seasonwarleaders", true, func(t *testing.T, db *store.Database, year int16, player string) error {
			return insertRow(t, db, &store.SeasonWarLeader{PlayerID: player, WAR: 14.1, YearID: year})
		}},
		{"seriespost", "uq_seriespost", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.SeriesPost{TeamIDWinner: "NYA", LgIDWinner: "AL", TeamIDLoser: "BRO", LgIDLoser: "NL",
				YearID: year, Round: "WS", Wins: i16(4), Losses: i16(2)})
		}},
		{"homegames", "unq_team_park_year", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.HomeGame{TeamID: "NYA", ParkID: "NYC16", YearID: year})
		}},
		// The year key is declared without a name.
		{"wobaweights", "", false, func(t *testing.T, db *store.Database, year int16, _ string) error {
			return insertRow(t, db, &store.WobaWeights{YearID: year, League: 0.3, WOBAScale: 1.2, WBB: 0.69})
		}},
	}
}

func runConstraintSuite(t *testing.T, db *store.Database) {
	seed(t, db)

	t.Run("every table is covered", func(t *testing.T) {
		covered := make(map[string]bool)
		for _, f := range fixtures() {
			covered[f.table] = true
		}
		for _, tbl := range db.Catalog().Tables() {
			assert.True(t, covered[tbl.Name], "no fixture for %s", tbl.Name)
		}
	})

	t.Run("duplicate natural keys", func(t *testing.T) {
		for i, f := range fixtures() {
			year := int16(1700 + i)
			t.Run(f.table, func(t *testing.T) {
				require.NoError(t, f.insert(t, db, year, "ruthba01"))

				err := f.insert(t, db, year, "ruthba01")
				require.ErrorIs(t, err, store.ErrUniqueViolation)
				var ce *store.ConstraintError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, f.table, ce.Table)
				if f.constraint != "" {
					assert.Equal(t, f.constraint, ce.Constraint)
				}
			})
		}
	})

	t.Run("unknown player", func(t *testing.T) {
		for i, f := range fixtures() {
			if !f.player {
				continue
			}
			year := int16(1600 + i)
			t.Run(f.table, func(t *testing.T) {
				err := f.insert(t, db, year, "nobody01")
				require.ErrorIs(t, err, store.ErrForeignKeyViolation)
				var ce *store.ConstraintError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, f.table, ce.Table)
			})
		}
	})

	t.Run("batting stints", func(t *testing.T) {
		first := &store.Batting{PlayerID: "ruthba01", YearID: 1920, TeamID: "NYA", Stint: 1}
		mustInsert(t, db, first)

		err := insertRow(t, db, &store.Batting{PlayerID: "ruthba01", YearID: 1920, TeamID: "NYA", Stint: 1})
		require.ErrorIs(t, err, store.ErrUniqueViolation)
		var ce *store.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "uq_player_year_team_stint", ce.Constraint)

		second := &store.Batting{PlayerID: "ruthba01", YearID: 1920, TeamID: "NYA", Stint: 2}
		mustInsert(t, db, second)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("team seasons", func(t *testing.T) {
		mustInsert(t, db, &store.Team{TeamID: "NYA", YearID: 1920, LgID: str("AL")})

		err := insertRow(t, db, &store.Team{TeamID: "NYA", YearID: 1920, LgID: str("AL")})
		require.ErrorIs(t, err, store.ErrUniqueViolation)
		var ce *store.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "uq_teams", ce.Constraint)

		mustInsert(t, db, &store.Team{TeamID: "NYA", YearID: 1921, LgID: str("AL")})
	})

	t.Run("generated keys follow explicit keys", func(t *testing.T) {
		explicit := &store.Team{ID: 90000, TeamID: "BOS", YearID: 1918, LgID: str("AL")}
		mustInsert(t, db, explicit)
		assert.Equal(t, int32(90000), explicit.ID)

		generated := &store.Team{TeamID: "BOS", YearID: 1919, LgID: str("AL")}
		mustInsert(t, db, generated)
		assert.Greater(t, generated.ID, explicit.ID)
	})

	t.Run("null positions do not collide", func(t *testing.T) {
		row := func() *store.Fielding {
			return &store.Fielding{PlayerID: "ruthba01", YearID: 1921, TeamID: "NYA", Stint: 1}
		}
		mustInsert(t, db, row())
		mustInsert(t, db, row())
	})

	t.Run("division active flag", func(t *testing.T) {
		err := insertRow(t, db, &store.Division{DivID: "E", LgID: "AL", Name: "East", Active: "X"})
		require.ErrorIs(t, err, store.ErrCheckViolation)
		var ce *store.ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "chk_division_active", ce.Constraint)

		mustInsert(t, db, &store.Division{DivID: "E", LgID: "AL", Name: "East", Active: "Y"})
		mustInsert(t, db, &store.Division{DivID: "W", LgID: "AL", Name: "West", Active: "N"})
	})

	t.Run("division league must exist", func(t *testing.T) {
		err := insertRow(t, db, &store.Division{DivID: "C", LgID: "XX", Name: "Central", Active: "Y"})
		require.ErrorIs(t, err, store.ErrForeignKeyViolation)
	})

	t.Run("referenced rows cannot be deleted", func(t *testing.T) {
		ctx := context.Background()
		mustInsert(t, db, &store.Batting{PlayerID: "gehrilo01", YearID: 1925, TeamID: "NYA", Stint: 1})

		people, err := New[store.Person](db)
		require.NoError(t, err)
		err = people.Delete(ctx, "gehrilo01")
		require.ErrorIs(t, err, store.ErrForeignKeyViolation)

		leagues, err := New[store.League](db)
		require.NoError(t, err)
		require.ErrorIs(t, leagues.Delete(ctx, "NL"), store.ErrForeignKeyViolation)

		mustInsert(t, db, &store.Person{PlayerID: "zzzzz01"})
		require.NoError(t, people.Delete(ctx, "zzzzz01"))
		_, err = people.Get(ctx, "zzzzz01")
		require.ErrorIs(t, err, ErrNotFound)

		kept, err := people.Get(ctx, "gehrilo01")
		require.NoError(t, err)
		assert.Equal(t, "Gehrig", kept.NameLast.String)
	})
}
