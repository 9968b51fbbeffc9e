package schema

// Reference and dimension tables.

func people() *Table {
	return &Table{
		Name: "people",
		Columns: cols(
			varchar("playerID", 9).NotNull(),
			integer("birthYear"),
			integer("birthMonth"),
			integer("birthDay"),
			varchar("birthCountry", 255),
			varchar("birthState", 255),
			varchar("birthCity", 255),
			integer("deathYear"),
			integer("deathMonth"),
			integer("deathDay"),
			varchar("deathCountry", 255),
			varchar("deathState", 255),
			varchar("deathCity", 255),
			varchar("nameFirst", 255),
			varchar("nameLast", 255),
			varchar("nameGiven", 255),
			integer("weight"),
			integer("height"),
			varchar("bats", 255),
			varchar("throws", 255),
			date("debutDate"),
			date("finalGameDate"),
			boolean("nl_hof").WithDefault(false),
		),
		PrimaryKey: pk("playerID"),
		Indexes: []Index{
			index("idx_nameLast", "nameLast"),
		},
	}
}

func leagues() *Table {
	return &Table{
		Name: "leagues",
		Columns: cols(
			varchar("lgID", 2).NotNull(),
			varchar("league_name", 50).NotNull(),
			varchar("league_active", 1).NotNull(),
		),
		PrimaryKey: pk("lgID"),
	}
}

func divisions() *Table {
	return &Table{
		Name: "divisions",
		Columns: cols(
			surrogate("divisions_ID"),
			varchar("divID", 2).NotNull(),
			varchar("lgID", 2).NotNull(),
			text("division_name").NotNull(),
			varchar("division_active", 1).NotNull(),
		),
		PrimaryKey: pk("divisions_ID"),
		ForeignKeys: []ForeignKey{
			fk("lgID", "leagues", "lgID"),
		},
		Uniques: []Unique{
			unique("uq_div_lg", "divID", "lgID"),
		},
		Checks: []Check{
			{Name: "chk_division_active", Column: "division_active", In: []string{"Y", "N"}},
		},
		Indexes: []Index{
			index("idx_lgID", "lgID"),
			index("idx_divID", "divID"),
		},
	}
}

func teams() *Table {
	return &Table{
		Name: "teams",
		Columns: columns(
			cols(
				surrogate("teams_ID"),
				teamID(),
				yearID(),
				varchar("lgID", 2),
				varchar("divID", 1),
				varchar("franchID", 3),
				varchar("team_name", 50),
			),
			smallints("team_rank", "team_G", "team_G_home", "team_W", "team_L"),
			cols(
				varchar("DivWin", 1),
				varchar("WCWin", 1),
				varchar("LgWin", 1),
				varchar("WSWin", 1),
			),
			smallints(
				"team_R", "team_AB", "team_H", "team_2B", "team_3B", "team_HR",
				"team_BB", "team_SO", "team_SB", "team_CS", "team_HBP", "team_SF",
				"team_RA", "team_ER",
			),
			cols(double("team_ERA")),
			smallints("team_CG", "team_SHO", "team_SV"),
			cols(integer("team_IPouts")),
			smallints("team_HA", "team_HRA", "team_BBA", "team_SOA", "team_E", "team_DP"),
			cols(
				double("team_FP"),
				varchar("park_name", 50),
				integer("team_attendance"),
			),
			smallints("team_BPF", "team_PPF", "team_projW", "team_projL"),
		),
		PrimaryKey: pk("teams_ID"),
		ForeignKeys: []ForeignKey{
			fk("lgID", "leagues", "lgID"),
			// divID is unique only together with lgID.
			fk("divID", "divisions", "divID"),
		},
		Uniques: []Unique{
			unique("uq_teams", "teamID", "yearID"),
		},
		Indexes: []Index{
			index("idx_teamID", "teamID"),
			index("idx_lgID", "lgID"),
			index("idx_franchID", "franchID"),
		},
	}
}

func parks() *Table {
	return &Table{
		Name: "parks",
		Columns: cols(
			text("parkID").NotNull(),
			text("park_alias").NotNull(),
			text("park_name").NotNull(),
			text("city").NotNull(),
			text("state").NotNull(),
			text("country").NotNull(),
		),
		PrimaryKey: pk("parkID"),
		Uniques: []Unique{
			unique("uq_entry", "park_name", "city", "state", "country"),
		},
	}
}

func schools() *Table {
	return &Table{
		Name: "schools",
		Columns: cols(
			varchar("schoolId", 15).NotNull(),
			varchar("school_name", 255).NotNull(),
			varchar("school_city", 55).NotNull(),
			varchar("school_state", 55).NotNull(),
			varchar("school_country", 55).NotNull(),
		),
		PrimaryKey: pk("schoolId"),
	}
}
