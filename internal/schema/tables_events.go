package schema

// Event tables record one row per discrete historical occurrence. The
// derived leaderboards and sabermetric weights live here too.

func draft() *Table {
	return &Table{
		Name: "draft",
		Columns: cols(
			surrogate("draft_ID"),
			playerID(),
			yearID(),
			teamID(),
		),
		PrimaryKey:  pk("draft_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_draft", "playerID", "yearID", "teamID"),
		},
		Indexes: []Index{
			index("k_draft_team", "teamID"),
			index("draft_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

// noHitters keeps the game date as the raw nine character code.
func noHitters() *Table {
	return &Table{
		Name: "nohitters",
		Columns: cols(
			surrogate("nohitters_ID"),
			playerID(),
			yearID(),
			teamID(),
			varchar("date", 9).NotNull(),
			varchar("type", 1).NotNull(),
		),
		PrimaryKey:  pk("nohitters_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_nohitters", "playerID", "yearID", "teamID", "date", "type"),
		},
		Indexes: []Index{
			index("k_nohitters_team", "teamID"),
			index("nohitters_playerID_yearID_teamID_date_type", "playerID", "yearID", "teamID", "date", "type"),
		},
	}
}

func collegePlaying() *Table {
	return &Table{
		Name: "collegeplaying",
		Columns: cols(
			surrogate("collegeplaying_ID"),
			playerID(),
			varchar("schoolID", 15),
			smallint("yearID"),
		),
		PrimaryKey: pk("collegeplaying_ID"),
		ForeignKeys: []ForeignKey{
			playerFK(),
			fk("schoolID", "schools", "schoolId"),
		},
		Uniques: []Unique{
			unique("uq_player_school_year", "playerID", "schoolID", "yearID"),
		},
		Indexes: []Index{
			index("idx_schoolID", "schoolID"),
			index("idx_playerID", "playerID"),
		},
	}
}

// seriesPost references teams by code only; a team code spans many seasons.
func seriesPost() *Table {
	return &Table{
		Name: "seriespost",
		Columns: cols(
			surrogate("seriespost_ID"),
			varchar("teamIDwinner", 3).NotNull(),
			varchar("lgIDwinner", 3).NotNull(),
			varchar("teamIDloser", 3).NotNull(),
			varchar("lgIDloser", 3).NotNull(),
			yearID(),
			varchar("round", 5).NotNull(),
			smallint("wins"),
			smallint("losses"),
			smallint("ties"),
		),
		PrimaryKey: pk("seriespost_ID"),
		ForeignKeys: []ForeignKey{
			fk("teamIDwinner", "teams", "teamID"),
			fk("lgIDwinner", "leagues", "lgID"),
			fk("teamIDloser", "teams", "teamID"),
			fk("lgIDloser", "leagues", "lgID"),
		},
		Uniques: []Unique{
			unique("uq_seriespost", "teamIDwinner", "lgIDwinner", "teamIDloser", "lgIDloser", "yearID", "round"),
		},
	}
}

func homeGames() *Table {
	return &Table{
		Name: "homegames",
		Columns: cols(
			surrogate("homegames_ID"),
			teamID(),
			text("parkID").NotNull(),
			yearID(),
			date("firstGame"),
			date("lastGame"),
			integer("games"),
			integer("openings"),
			integer("attendance"),
		),
		PrimaryKey: pk("homegames_ID"),
		ForeignKeys: []ForeignKey{
			teamFK(),
			fk("parkID", "parks", "parkID"),
		},
		Uniques: []Unique{
			unique("unq_team_park_year", "teamID", "parkID", "yearID"),
		},
		Indexes: []Index{
			index("idx_parkID", "parkID"),
		},
	}
}

func careerWarLeaders() *Table {
	return &Table{
		Name: "careerwarleaders",
		Columns: cols(
			surrogate("careerwarleaders_ID"),
			playerID(),
			double("war").NotNull(),
		),
		PrimaryKey:  pk("careerwarleaders_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_careerwarleaders", "playerID"),
		},
		Indexes: []Index{
			index("careerwarleaders_playerID_war", "playerID", "war"),
		},
	}
}

func seasonWarLeaders() *Table {
	return &Table{
		Name: "seasonwarleaders",
		Columns: cols(
			surrogate("seasonwarleaders_ID"),
			playerID(),
			double("war").NotNull(),
			yearID(),
		),
		PrimaryKey:  pk("seasonwarleaders_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_seasonwarleaders", "playerID", "yearID"),
		},
		Indexes: []Index{
			index("seasonwarleaders_playerID_war", "playerID", "war"),
		},
	}
}

// wobaWeights holds one row of linear weights per season. The yearID
// uniqueness is left unnamed so the engine picks the name.
func wobaWeights() *Table {
	return &Table{
		Name: "wobaweights",
		Columns: columns(
			cols(
				surrogate("wobaweights_ID"),
				yearID(),
			),
			requiredFloats(
				"League", "wOBAScale", "wBB", "wHBP", "w1B", "w2B", "w3B", "wHR",
				"runSB", "runCS", "R_PA", "R_W", "cFIP",
			),
		),
		PrimaryKey: pk("wobaweights_ID"),
		Uniques: []Unique{
			{Columns: []string{"yearID"}},
		},
	}
}
