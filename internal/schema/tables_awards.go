package schema

func awards() *Table {
	return &Table{
		Name: "awards",
		Columns: cols(
			surrogate("awards_ID"),
			varchar("awardID", 255).NotNull(),
			yearID(),
			playerID(),
			varchar("lgID", 2).NotNull(),
			varchar("tie", 1),
			varchar("notes", 100),
		),
		PrimaryKey:  pk("awards_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_award_year_player_lg", "awardID", "yearID", "playerID", "lgID"),
		},
		Indexes: []Index{
			index("fk_awd_peo", "playerID"),
		},
	}
}

func awardsShare() *Table {
	return &Table{
		Name: "awardsshare",
		Columns: cols(
			surrogate("awardsshare_ID"),
			varchar("awardID", 255).NotNull(),
			yearID(),
			playerID(),
			varchar("lgID", 2).NotNull(),
			double("pointsWon"),
			smallint("pointsMax"),
			double("votesFirst"),
		),
		PrimaryKey:  pk("awardsshare_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_award_year_player_lg", "awardID", "yearID", "playerID", "lgID"),
		},
		Indexes: []Index{
			index("fk_awdshr_peo", "playerID"),
		},
	}
}

// hallOfFame carries one ballot result per player, year and voting body.
func hallOfFame() *Table {
	return &Table{
		Name: "halloffame",
		Columns: cols(
			surrogate("halloffame_ID"),
			playerID(),
			yearID(),
			varchar("votedBy", 64).NotNull(),
			smallint("ballots"),
			smallint("needed"),
			smallint("votes"),
			varchar("inducted", 1),
			varchar("category", 20),
			varchar("note", 255),
		),
		PrimaryKey:  pk("halloffame_ID"),
		ForeignKeys: []ForeignKey{playerFK()},
		Uniques: []Unique{
			unique("uq_halloffame", "playerID", "yearID", "votedBy"),
		},
	}
}

func allstarFull() *Table {
	return &Table{
		Name: "allstarfull",
		Columns: cols(
			surrogate("allstarfull_ID"),
			playerID(),
			varchar("lgID", 2).NotNull(),
			teamID(),
			yearID(),
			varchar("gameID", 12),
			smallint("GP"),
			smallint("startingPos"),
		),
		PrimaryKey: pk("allstarfull_ID"),
		ForeignKeys: []ForeignKey{
			playerFK(),
			fk("lgID", "leagues", "lgID"),
		},
		Uniques: []Unique{
			unique("uq_allstarfull", "playerID", "lgID", "teamID", "yearID"),
		},
	}
}
