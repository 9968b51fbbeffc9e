package schema

// Season-scoped performance tables: one row per player, team, year and
// stint, or per postseason round.

var battingStats = []string{
	"b_G", "b_AB", "b_R", "b_H", "b_2B", "b_3B", "b_HR", "b_RBI", "b_SB",
	"b_CS", "b_BB", "b_SO", "b_IBB", "b_HBP", "b_SH", "b_SF", "b_GIDP",
}

func batting() *Table {
	return &Table{
		Name: "batting",
		Columns: columns(
			cols(
				surrogate("batting_ID"),
				playerID(),
				yearID(),
				teamID(),
				smallint("stint").NotNull(),
			),
			smallints(battingStats...),
		),
		PrimaryKey:  pk("batting_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_player_year_team_stint", "playerID", "yearID", "teamID", "stint"),
		},
		Indexes: []Index{
			index("k_bat_team", "teamID"),
			index("batting_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

// battingPost spells its year column yearId, as the store does.
func battingPost() *Table {
	return &Table{
		Name: "battingpost",
		Columns: columns(
			cols(
				surrogate("battingpost_ID"),
				playerID(),
				smallint("yearId").NotNull(),
				teamID(),
				varchar("round", 10).NotNull(),
			),
			smallints(battingStats...),
		),
		PrimaryKey:  pk("battingpost_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_player_year_team_round", "playerID", "yearId", "teamID", "round"),
		},
		Indexes: []Index{
			index("k_bp_team", "teamID"),
			index("battingpost_playerID_yearID_teamID", "playerID", "yearId", "teamID"),
		},
	}
}

func pitchingStats() []*Column {
	return columns(
		smallints("p_W", "p_L", "p_G", "p_GS", "p_CG", "p_SHO", "p_SV"),
		cols(integer("p_IPouts")),
		smallints("p_H", "p_ER", "p_HR", "p_BB", "p_SO"),
		cols(double("p_BAOpp"), double("p_ERA")),
		smallints("p_IBB", "p_WP", "p_HBP", "p_BK", "p_BFP", "p_GF", "p_R", "p_SH", "p_SF", "p_GIDP"),
	)
}

func pitching() *Table {
	return &Table{
		Name: "pitching",
		Columns: columns(
			cols(
				surrogate("pitching_ID"),
				playerID(),
				yearID(),
				teamID(),
				smallint("stint").NotNull(),
			),
			pitchingStats(),
		),
		PrimaryKey:  pk("pitching_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_player_year_team_stint", "playerID", "yearID", "teamID", "stint"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

func pitchingPost() *Table {
	return &Table{
		Name: "pitchingpost",
		Columns: columns(
			cols(
				surrogate("pitchingpost_ID"),
				playerID(),
				yearID(),
				teamID(),
				varchar("round", 10).NotNull(),
			),
			pitchingStats(),
		),
		PrimaryKey:  pk("pitchingpost_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_player_year_team_round", "playerID", "yearID", "teamID", "round"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

func fielding() *Table {
	return &Table{
		Name: "fielding",
		Columns: columns(
			cols(
				surrogate("fielding_ID"),
				playerID(),
				yearID(),
				teamID(),
				smallint("stint").NotNull(),
				varchar("position", 2),
			),
			smallints(
				"f_G", "f_GS", "f_InnOuts", "f_PO", "f_A", "f_E", "f_DP", "f_PB",
				"f_WP", "f_SB", "f_CS",
			),
			cols(float("f_ZR")),
		),
		PrimaryKey:  pk("fielding_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_player_team_year_stint_position", "playerID", "yearID", "teamID", "stint", "position"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

func fieldingPost() *Table {
	return &Table{
		Name: "fieldingpost",
		Columns: columns(
			cols(
				surrogate("fieldingpost_ID"),
				playerID(),
				yearID(),
				teamID(),
				varchar("round", 10).NotNull(),
				varchar("position", 2),
			),
			smallints("f_G", "f_GS", "f_InnOuts", "f_PO", "f_A", "f_E", "f_DP", "f_TP", "f_PB"),
		),
		PrimaryKey:  pk("fieldingpost_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_player_team_year_round_position", "playerID", "yearID", "teamID", "round", "position"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_playerID_yearID_teamID", "playerID", "yearID", "teamID"),
		},
	}
}

func appearances() *Table {
	return &Table{
		Name: "appearances",
		Columns: columns(
			cols(
				surrogate("appearances_ID"),
				playerID(),
				yearID(),
				teamID(),
			),
			smallints(
				"G_all", "GS", "G_batting", "G_defense", "G_p", "G_c", "G_1b", "G_2b",
				"G_3b", "G_ss", "G_lf", "G_cf", "G_rf", "G_of", "G_dh", "G_ph", "G_pr",
			),
		),
		PrimaryKey:  pk("appearances_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_player_year_team", "playerID", "yearID", "teamID"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_playerID_yearID", "playerID", "yearID"),
		},
	}
}

func managers() *Table {
	return &Table{
		Name: "managers",
		Columns: cols(
			surrogate("managers_ID"),
			playerID(),
			yearID(),
			teamID(),
			smallint("inSeason").NotNull(),
			smallint("manager_G"),
			smallint("manager_W"),
			smallint("manager_L"),
			smallint("teamRank"),
			varchar("plyrMgr", 1),
			smallint("half"),
		),
		PrimaryKey:  pk("managers_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_player_year_team_inseason", "playerID", "yearID", "teamID", "inSeason"),
		},
		Options: utf8mb3,
	}
}

// salaries spells its year column yearId, as the store does.
func salaries() *Table {
	return &Table{
		Name: "salaries",
		Columns: cols(
			surrogate("salaries_ID"),
			playerID(),
			smallint("yearId").NotNull(),
			teamID(),
			double("salary"),
		),
		PrimaryKey:  pk("salaries_ID"),
		ForeignKeys: []ForeignKey{playerFK(), teamFK()},
		Uniques: []Unique{
			unique("uq_salary_player_year_team", "playerID", "yearId", "teamID"),
		},
		Indexes: []Index{
			index("key_team", "teamID"),
			index("salaries_playerID", "playerID"),
		},
		Options: utf8mb3,
	}
}
