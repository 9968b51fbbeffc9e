package store

import (
	"database/sql"
)

// Model is a row type mapped onto one catalog table. Fields carry a db tag
// naming their column.
type Model interface {
	TableName() string
}

// Person is a biographical record, one per historical player.
type Person struct {
	PlayerID      string         `json:"playerID" db:"playerID"`
	BirthYear     sql.NullInt32  `json:"birthYear,omitempty" db:"birthYear"`
	BirthMonth    sql.NullInt32  `json:"birthMonth,omitempty" db:"birthMonth"`
	BirthDay      sql.NullInt32  `json:"birthDay,omitempty" db:"birthDay"`
	BirthCountry  sql.NullString `json:"birthCountry,omitempty" db:"birthCountry"`
	BirthState    sql.NullString `json:"birthState,omitempty" db:"birthState"`
	BirthCity     sql.NullString `json:"birthCity,omitempty" db:"birthCity"`
	DeathYear     sql.NullInt32  `json:"deathYear,omitempty" db:"deathYear"`
	DeathMonth    sql.NullInt32  `json:"deathMonth,omitempty" db:"deathMonth"`
	DeathDay      sql.NullInt32  `json:"deathDay,omitempty" db:"deathDay"`
	DeathCountry  sql.NullString `json:"deathCountry,omitempty" db:"deathCountry"`
	DeathState    sql.NullString `json:"deathState,omitempty" db:"deathState"`
	DeathCity     sql.NullString `json:"deathCity,omitempty" db:"deathCity"`
	NameFirst     sql.NullString `json:"nameFirst,omitempty" db:"nameFirst"`
	NameLast      sql.NullString `json:"nameLast,omitempty" db:"nameLast"`
	NameGiven     sql.NullString `json:"nameGiven,omitempty" db:"nameGiven"`
	Weight        sql.NullInt32  `json:"weight,omitempty" db:"weight"`
	Height        sql.NullInt32  `json:"height,omitempty" db:"height"`
	Bats          sql.NullString `json:"bats,omitempty" db:"bats"`
	Throws        sql.NullString `json:"throws,omitempty" db:"throws"`
	DebutDate     sql.NullTime   `json:"debutDate,omitempty" db:"debutDate"`
	FinalGameDate sql.NullTime   `json:"finalGameDate,omitempty" db:"finalGameDate"`
	HallOfFame    sql.NullBool   `json:"nl_hof,omitempty" db:"nl_hof"`
}

func (Person) TableName() string { return "people" }

// League is a major league, e.g. AL or NL.
type League struct {
	LgID   string `json:"lgID" db:"lgID"`
	Name   string `json:"league_name" db:"league_name"`
	Active string `json:"league_active" db:"league_active"`
}

func (League) TableName() string { return "leagues" }

// Division is a division within a league. Active is Y or N.
type Division struct {
	ID     int32  `json:"divisions_ID" db:"divisions_ID"`
	DivID  string `json:"divID" db:"divID"`
	LgID   string `json:"lgID" db:"lgID"`
	Name   string `json:"division_name" db:"division_name"`
	Active string `json:"division_active" db:"division_active"`
}

func (Division) TableName() string { return "divisions" }

// Team is one franchise's season.
type Team struct {
	ID         int32           `json:"teams_ID" db:"teams_ID"`
	TeamID     string          `json:"teamID" db:"teamID"`
	YearID     int16           `json:"yearID" db:"yearID"`
	LgID       sql.NullString  `json:"lgID,omitempty" db:"lgID"`
	DivID      sql.NullString  `json:"divID,omitempty" db:"divID"`
	FranchID   sql.NullString  `json:"franchID,omitempty" db:"franchID"`
	Name       sql.NullString  `json:"team_name,omitempty" db:"team_name"`
	Rank       sql.NullInt16   `json:"team_rank,omitempty" db:"team_rank"`
	G          sql.NullInt16   `json:"team_G,omitempty" db:"team_G"`
	GHome      sql.NullInt16   `json:"team_G_home,omitempty" db:"team_G_home"`
	W          sql.NullInt16   `json:"team_W,omitempty" db:"team_W"`
	L          sql.NullInt16   `json:"team_L,omitempty" db:"team_L"`
	DivWin     sql.NullString  `json:"DivWin,omitempty" db:"DivWin"`
	WCWin      sql.NullString  `json:"WCWin,omitempty" db:"WCWin"`
	LgWin      sql.NullString  `json:"LgWin,omitempty" db:"LgWin"`
	WSWin      sql.NullString  `json:"WSWin,omitempty" db:"WSWin"`
	R          sql.NullInt16   `json:"team_R,omitempty" db:"team_R"`
	AB         sql.NullInt16   `json:"team_AB,omitempty" db:"team_AB"`
	H          sql.NullInt16   `json:"team_H,omitempty" db:"team_H"`
	Doubles    sql.NullInt16   `json:"team_2B,omitempty" db:"team_2B"`
	Triples    sql.NullInt16   `json:"team_3B,omitempty" db:"team_3B"`
	HR         sql.NullInt16   `json:"team_HR,omitempty" db:"team_HR"`
	BB         sql.NullInt16   `json:"team_BB,omitempty" db:"team_BB"`
	SO         sql.NullInt16   `json:"team_SO,omitempty" db:"team_SO"`
	SB         sql.NullInt16   `json:"team_SB,omitempty" db:"team_SB"`
	CS         sql.NullInt16   `json:"team_CS,omitempty" db:"team_CS"`
	HBP        sql.NullInt16   `json:"team_HBP,omitempty" db:"team_HBP"`
	SF         sql.NullInt16   `json:"team_SF,omitempty" db:"team_SF"`
	RA         sql.NullInt16   `json:"team_RA,omitempty" db:"team_RA"`
	ER         sql.NullInt16   `json:"team_ER,omitempty" db:"team_ER"`
	ERA        sql.NullFloat64 `json:"team_ERA,omitempty" db:"team_ERA"`
	CG         sql.NullInt16   `json:"team_CG,omitempty" db:"team_CG"`
	SHO        sql.NullInt16   `json:"team_SHO,omitempty" db:"team_SHO"`
	SV         sql.NullInt16   `json:"team_SV,omitempty" db:"team_SV"`
	IPouts     sql.NullInt32   `json:"team_IPouts,omitempty" db:"team_IPouts"`
	HA         sql.NullInt16   `json:"team_HA,omitempty" db:"team_HA"`
	HRA        sql.NullInt16   `json:"team_HRA,omitempty" db:"team_HRA"`
	BBA        sql.NullInt16   `json:"team_BBA,omitempty" db:"team_BBA"`
	SOA        sql.NullInt16   `json:"team_SOA,omitempty" db:"team_SOA"`
	E          sql.NullInt16   `json:"team_E,omitempty" db:"team_E"`
	DP         sql.NullInt16   `json:"team_DP,omitempty" db:"team_DP"`
	FP         sql.NullFloat64 `json:"team_FP,omitempty" db:"team_FP"`
	ParkName   sql.NullString  `json:"park_name,omitempty" db:"park_name"`
	Attendance sql.NullInt32   `json:"team_attendance,omitempty" db:"team_attendance"`
	BPF        sql.NullInt16   `json:"team_BPF,omitempty" db:"team_BPF"`
	PPF        sql.NullInt16   `json:"team_PPF,omitempty" db:"team_PPF"`
	ProjW      sql.NullInt16   `json:"team_projW,omitempty" db:"team_projW"`
	ProjL      sql.NullInt16   `json:"team_projL,omitempty" db:"team_projL"`
}

func (Team) TableName() string { return "teams" }

// Park is a ballpark.
type Park struct {
	ParkID  string `json:"parkID" db:"parkID"`
	Alias   string `json:"park_alias" db:"park_alias"`
	Name    string `json:"park_name" db:"park_name"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	Country string `json:"country" db:"country"`
}

func (Park) TableName() string { return "parks" }

// School is a college a player attended.
type School struct {
	SchoolID string `json:"schoolId" db:"schoolId"`
	Name     string `json:"school_name" db:"school_name"`
	City     string `json:"school_city" db:"school_city"`
	State    string `json:"school_state" db:"school_state"`
	Country  string `json:"school_country" db:"school_country"`
}

func (School) TableName() string { return "schools" }

// BattingLine holds the counting stats shared by regular season and
// postseason batting.
type BattingLine struct {
	G       sql.NullInt16 `json:"b_G,omitempty" db:"b_G"`
	AB      sql.NullInt16 `json:"b_AB,omitempty" db:"b_AB"`
	R       sql.NullInt16 `json:"b_R,omitempty" db:"b_R"`
	H       sql.NullInt16 `json:"b_H,omitempty" db:"b_H"`
	Doubles sql.NullInt16 `json:"b_2B,omitempty" db:"b_2B"`
	Triples sql.NullInt16 `json:"b_3B,omitempty" db:"b_3B"`
	HR      sql.NullInt16 `json:"b_HR,omitempty" db:"b_HR"`
	RBI     sql.NullInt16 `json:"b_RBI,omitempty" db:"b_RBI"`
	SB      sql.NullInt16 `json:"b_SB,omitempty" db:"b_SB"`
	CS      sql.NullInt16 `json:"b_CS,omitempty" db:"b_CS"`
	BB      sql.NullInt16 `json:"b_BB,omitempty" db:"b_BB"`
	SO      sql.NullInt16 `json:"b_SO,omitempty" db:"b_SO"`
	IBB     sql.NullInt16 `json:"b_IBB,omitempty" db:"b_IBB"`
	HBP     sql.NullInt16 `json:"b_HBP,omitempty" db:"b_HBP"`
	SH      sql.NullInt16 `json:"b_SH,omitempty" db:"b_SH"`
	SF      sql.NullInt16 `json:"b_SF,omitempty" db:"b_SF"`
	GIDP    sql.NullInt16 `json:"b_GIDP,omitempty" db:"b_GIDP"`
}

// Batting is one player's regular season batting for one team and stint.
type Batting struct {
	ID       int32  `json:"batting_ID" db:"batting_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearID" db:"yearID"`
	TeamID   string `json:"teamID" db:"teamID"`
	Stint    int16  `json:"stint" db:"stint"`
	BattingLine
}

func (Batting) TableName() string { return "batting" }

// BattingPost is one player's batting in one postseason round.
type BattingPost struct {
	ID       int32  `json:"battingpost_ID" db:"battingpost_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearId" db:"yearId"`
	TeamID   string `json:"teamID" db:"teamID"`
	Round    string `json:"round" db:"round"`
	BattingLine
}

func (BattingPost) TableName() string { return "battingpost" }

// PitchingLine holds the stats shared by regular season and postseason
// pitching.
type PitchingLine struct {
	W      sql.NullInt16   `json:"p_W,omitempty" db:"p_W"`
	L      sql.NullInt16   `json:"p_L,omitempty" db:"p_L"`
	G      sql.NullInt16   `json:"p_G,omitempty" db:"p_G"`
	GS     sql.NullInt16   `json:"p_GS,omitempty" db:"p_GS"`
	CG     sql.NullInt16   `json:"p_CG,omitempty" db:"p_CG"`
	SHO    sql.NullInt16   `json:"p_SHO,omitempty" db:"p_SHO"`
	SV     sql.NullInt16   `json:"p_SV,omitempty" db:"p_SV"`
	IPouts sql.NullInt32   `json:"p_IPouts,omitempty" db:"p_IPouts"`
	H      sql.NullInt16   `json:"p_H,omitempty" db:"p_H"`
	ER     sql.NullInt16   `json:"p_ER,omitempty" db:"p_ER"`
	HR     sql.NullInt16   `json:"p_HR,omitempty" db:"p_HR"`
	BB     sql.NullInt16   `json:"p_BB,omitempty" db:"p_BB"`
	SO     sql.NullInt16   `json:"p_SO,omitempty" db:"p_SO"`
	BAOpp  sql.NullFloat64 `json:"p_BAOpp,omitempty" db:"p_BAOpp"`
	ERA    sql.NullFloat64 `json:"p_ERA,omitempty" db:"p_ERA"`
	IBB    sql.NullInt16   `json:"p_IBB,omitempty" db:"p_IBB"`
	WP     sql.NullInt16   `json:"p_WP,omitempty" db:"p_WP"`
	HBP    sql.NullInt16   `json:"p_HBP,omitempty" db:"p_HBP"`
	BK     sql.NullInt16   `json:"p_BK,omitempty" db:"p_BK"`
	BFP    sql.NullInt16   `json:"p_BFP,omitempty" db:"p_BFP"`
	GF     sql.NullInt16   `json:"p_GF,omitempty" db:"p_GF"`
	R      sql.NullInt16   `json:"p_R,omitempty" db:"p_R"`
	SH     sql.NullInt16   `json:"p_SH,omitempty" db:"p_SH"`
	SF     sql.NullInt16   `json:"p_SF,omitempty" db:"p_SF"`
	GIDP   sql.NullInt16   `json:"p_GIDP,omitempty" db:"p_GIDP"`
}

// Pitching is one player's regular season pitching for one team and stint.
type Pitching struct {
	ID       int32  `json:"pitching_ID" db:"pitching_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearID" db:"yearID"`
	TeamID   string `json:"teamID" db:"teamID"`
	Stint    int16  `json:"stint" db:"stint"`
	PitchingLine
}

func (Pitching) TableName() string { return "pitching" }

type PitchingPost struct {
	ID       int32  `json:"pitchingpost_ID" db:"pitchingpost_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearID" db:"yearID"`
	TeamID   string `json:"teamID" db:"teamID"`
	Round    string `json:"round" db:"round"`
	PitchingLine
}

func (PitchingPost) TableName() string { return "pitchingpost" }

// Fielding is one player's fielding at one position for one team and stint.
type Fielding struct {
	ID       int32          `json:"fielding_ID" db:"fielding_ID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	YearID   int16          `json:"yearID" db:"yearID"`
	TeamID   string         `json:"teamID" db:"teamID"`
	Stint    int16          `json:"stint" db:"stint"`
	Position sql.NullString `json:"position,omitempty" db:"position"`
	G        sql.NullInt16  `json:"f_G,omitempty" db:"f_G"`
	GS       sql.NullInt16  `json:"f_GS,omitempty" db:"f_GS"`
	InnOuts  sql.NullInt16  `json:"f_InnOuts,omitempty" db:"f_InnOuts"`
	PO       sql.NullInt16  `json:"f_PO,omitempty" db:"f_PO"`
	A        sql.NullInt16  `json:"f_A,omitempty" db:"f_A"`
	E        sql.NullInt16  `json:"f_E,omitempty" db:"f_E"`
	DP       sql.NullInt16  `json:"f_DP,omitempty" db:"f_DP"`
	PB       sql.NullInt16  `json:"f_PB,omitempty" db:"f_PB"`
	WP       sql.NullInt16  `json:"f_WP,omitempty" db:"f_WP"`
	SB       sql.NullInt16  `json:"f_SB,omitempty" db:"f_SB"`
	CS       sql.NullInt16  `json:"f_CS,omitempty" db:"f_CS"`
	ZR       NullFloat32    `json:"f_ZR,omitempty" db:"f_ZR"`
}

func (Fielding) TableName() string { return "fielding" }

type FieldingPost struct {
	ID       int32          `json:"fieldingpost_ID" db:"fieldingpost_ID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	YearID   int16          `json:"yearID" db:"yearID"`
	TeamID   string         `json:"teamID" db:"teamID"`
	Round    string         `json:"round" db:"round"`
	Position sql.NullString `json:"position,omitempty" db:"position"`
	G        sql.NullInt16  `json:"f_G,omitempty" db:"f_G"`
	GS       sql.NullInt16  `json:"f_GS,omitempty" db:"f_GS"`
	InnOuts  sql.NullInt16  `json:"f_InnOuts,omitempty" db:"f_InnOuts"`
	PO       sql.NullInt16  `json:"f_PO,omitempty" db:"f_PO"`
	A        sql.NullInt16  `json:"f_A,omitempty" db:"f_A"`
	E        sql.NullInt16  `json:"f_E,omitempty" db:"f_E"`
	DP       sql.NullInt16  `json:"f_DP,omitempty" db:"f_DP"`
	TP       sql.NullInt16  `json:"f_TP,omitempty" db:"f_TP"`
	PB       sql.NullInt16  `json:"f_PB,omitempty" db:"f_PB"`
}

func (FieldingPost) TableName() string { return "fieldingpost" }

// Appearances counts games by position for one player, team and year.
type Appearances struct {
	ID       int32         `json:"appearances_ID" db:"appearances_ID"`
	PlayerID string        `json:"playerID" db:"playerID"`
	YearID   int16         `json:"yearID" db:"yearID"`
	TeamID   string        `json:"teamID" db:"teamID"`
	GAll     sql.NullInt16 `json:"G_all,omitempty" db:"G_all"`
	GS       sql.NullInt16 `json:"GS,omitempty" db:"GS"`
	GBatting sql.NullInt16 `json:"G_batting,omitempty" db:"G_batting"`
	GDefense sql.NullInt16 `json:"G_defense,omitempty" db:"G_defense"`
	GP       sql.NullInt16 `json:"G_p,omitempty" db:"G_p"`
	GC       sql.NullInt16 `json:"G_c,omitempty" db:"G_c"`
	G1B      sql.NullInt16 `json:"G_1b,omitempty" db:"G_1b"`
	G2B      sql.NullInt16 `json:"G_2b,omitempty" db:"G_2b"`
	G3B      sql.NullInt16 `json:"G_3b,omitempty" db:"G_3b"`
	GSS      sql.NullInt16 `json:"G_ss,omitempty" db:"G_ss"`
	GLF      sql.NullInt16 `json:"G_lf,omitempty" db:"G_lf"`
	GCF      sql.NullInt16 `json:"G_cf,omitempty" db:"G_cf"`
	GRF      sql.NullInt16 `json:"G_rf,omitempty" db:"G_rf"`
	GOF      sql.NullInt16 `json:"G_of,omitempty" db:"G_of"`
	GDH      sql.NullInt16 `json:"G_dh,omitempty" db:"G_dh"`
	GPH      sql.NullInt16 `json:"G_ph,omitempty" db:"G_ph"`
	GPR      sql.NullInt16 `json:"G_pr,omitempty" db:"G_pr"`
}

func (Appearances) TableName() string { return "appearances" }

// Manager is one managerial stint. InSeason orders managers who shared a
// team within one season.
type Manager struct {
	ID       int32          `json:"managers_ID" db:"managers_ID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	YearID   int16          `json:"yearID" db:"yearID"`
	TeamID   string         `json:"teamID" db:"teamID"`
	InSeason int16          `json:"inSeason" db:"inSeason"`
	G        sql.NullInt16  `json:"manager_G,omitempty" db:"manager_G"`
	W        sql.NullInt16  `json:"manager_W,omitempty" db:"manager_W"`
	L        sql.NullInt16  `json:"manager_L,omitempty" db:"manager_L"`
	TeamRank sql.NullInt16  `json:"teamRank,omitempty" db:"teamRank"`
	PlyrMgr  sql.NullString `json:"plyrMgr,omitempty" db:"plyrMgr"`
	Half     sql.NullInt16  `json:"half,omitempty" db:"half"`
}

func (Manager) TableName() string { return "managers" }

type Salary struct {
	ID       int32           `json:"salaries_ID" db:"salaries_ID"`
	PlayerID string          `json:"playerID" db:"playerID"`
	YearID   int16           `json:"yearId" db:"yearId"`
	TeamID   string          `json:"teamID" db:"teamID"`
	Salary   sql.NullFloat64 `json:"salary,omitempty" db:"salary"`
}

func (Salary) TableName() string { return "salaries" }

type Award struct {
	ID       int32          `json:"awards_ID" db:"awards_ID"`
	AwardID  string         `json:"awardID" db:"awardID"`
	YearID   int16          `json:"yearID" db:"yearID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	LgID     string         `json:"lgID" db:"lgID"`
	Tie      sql.NullString `json:"tie,omitempty" db:"tie"`
	Notes    sql.NullString `json:"notes,omitempty" db:"notes"`
}

func (Award) TableName() string { return "awards" }

// AwardShare is one player's share of award voting.
type AwardShare struct {
	ID         int32           `json:"awardsshare_ID" db:"awardsshare_ID"`
	AwardID    string          `json:"awardID" db:"awardID"`
	YearID     int16           `json:"yearID" db:"yearID"`
	PlayerID   string          `json:"playerID" db:"playerID"`
	LgID       string          `json:"lgID" db:"lgID"`
	PointsWon  sql.NullFloat64 `json:"pointsWon,omitempty" db:"pointsWon"`
	PointsMax  sql.NullInt16   `json:"pointsMax,omitempty" db:"pointsMax"`
	VotesFirst sql.NullFloat64 `json:"votesFirst,omitempty" db:"votesFirst"`
}

func (AwardShare) TableName() string { return "awardsshare" }

type HallOfFame struct {
	ID       int32          `json:"halloffame_ID" db:"halloffame_ID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	YearID   int16          `json:"yearID" db:"yearID"`
	VotedBy  string         `json:"votedBy" db:"votedBy"`
	Ballots  sql.NullInt16  `json:"ballots,omitempty" db:"ballots"`
	Needed   sql.NullInt16  `json:"needed,omitempty" db:"needed"`
	Votes    sql.NullInt16  `json:"votes,omitempty" db:"votes"`
	Inducted sql.NullString `json:"inducted,omitempty" db:"inducted"`
	Category sql.NullString `json:"category,omitempty" db:"category"`
	Note     sql.NullString `json:"note,omitempty" db:"note"`
}

func (HallOfFame) TableName() string { return "halloffame" }

type AllstarFull struct {
	ID          int32          `json:"allstarfull_ID" db:"allstarfull_ID"`
	PlayerID    string         `json:"playerID" db:"playerID"`
	LgID        string         `json:"lgID" db:"lgID"`
	TeamID      string         `json:"teamID" db:"teamID"`
	YearID      int16          `json:"yearID" db:"yearID"`
	GameID      sql.NullString `json:"gameID,omitempty" db:"gameID"`
	GP          sql.NullInt16  `json:"GP,omitempty" db:"GP"`
	StartingPos sql.NullInt16  `json:"startingPos,omitempty" db:"startingPos"`
}

func (AllstarFull) TableName() string { return "allstarfull" }

type CareerWarLeader struct {
	ID       int32   `json:"careerwarleaders_ID" db:"careerwarleaders_ID"`
	PlayerID string  `json:"playerID" db:"playerID"`
	WAR      float64 `json:"war" db:"war"`
}

func (CareerWarLeader) TableName() string { return "careerwarleaders" }

type SeasonWarLeader struct {
	ID       int32   `json:"seasonwarleaders_ID" db:"seasonwarleaders_ID"`
	PlayerID string  `json:"playerID" db:"playerID"`
	WAR      float64 `json:"war" db:"war"`
	YearID   int16   `json:"yearID" db:"yearID"`
}

func (SeasonWarLeader) TableName() string { return "seasonwarleaders" }

type Draft struct {
	ID       int32  `json:"draft_ID" db:"draft_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearID" db:"yearID"`
	TeamID   string `json:"teamID" db:"teamID"`
}

func (Draft) TableName() string { return "draft" }

// NoHitter is one no-hit game. Date is the raw nine character code.
type NoHitter struct {
	ID       int32  `json:"nohitters_ID" db:"nohitters_ID"`
	PlayerID string `json:"playerID" db:"playerID"`
	YearID   int16  `json:"yearID" db:"yearID"`
	TeamID   string `json:"teamID" db:"teamID"`
	Date     string `json:"date" db:"date"`
	Type     string `json:"type" db:"type"`
}

func (NoHitter) TableName() string { return "nohitters" }

type CollegePlaying struct {
	ID       int32          `json:"collegeplaying_ID" db:"collegeplaying_ID"`
	PlayerID string         `json:"playerID" db:"playerID"`
	SchoolID sql.NullString `json:"schoolID,omitempty" db:"schoolID"`
	YearID   sql.NullInt16  `json:"yearID,omitempty" db:"yearID"`
}

func (CollegePlaying) TableName() string { return "collegeplaying" }

// SeriesPost is the result of one postseason series.
type SeriesPost struct {
	ID           int32         `json:"seriespost_ID" db:"seriespost_ID"`
	TeamIDWinner string        `json:"teamIDwinner" db:"teamIDwinner"`
	LgIDWinner   string        `json:"lgIDwinner" db:"lgIDwinner"`
	TeamIDLoser  string        `json:"teamIDloser" db:"teamIDloser"`
	LgIDLoser    string        `json:"lgIDloser" db:"lgIDloser"`
	YearID       int16         `json:"yearID" db:"yearID"`
	Round        string        `json:"round" db:"round"`
	Wins         sql.NullInt16 `json:"wins,omitempty" db:"wins"`
	Losses       sql.NullInt16 `json:"losses,omitempty" db:"losses"`
	Ties         sql.NullInt16 `json:"ties,omitempty" db:"ties"`
}

func (SeriesPost) TableName() string { return "seriespost" }

type HomeGame struct {
	ID         int32         `json:"homegames_ID" db:"homegames_ID"`
	TeamID     string        `json:"teamID" db:"teamID"`
	ParkID     string        `json:"parkID" db:"parkID"`
	YearID     int16         `json:"yearID" db:"yearID"`
	FirstGame  sql.NullTime  `json:"firstGame,omitempty" db:"firstGame"`
	LastGame   sql.NullTime  `json:"lastGame,omitempty" db:"lastGame"`
	Games      sql.NullInt32 `json:"games,omitempty" db:"games"`
	Openings   sql.NullInt32 `json:"openings,omitempty" db:"openings"`
	Attendance sql.NullInt32 `json:"attendance,omitempty" db:"attendance"`
}

func (HomeGame) TableName() string { return "homegames" }

// WobaWeights are one season's linear weights for wOBA and FIP.
type WobaWeights struct {
	ID        int32   `json:"wobaweights_ID" db:"wobaweights_ID"`
	YearID    int16   `json:"yearID" db:"yearID"`
	League    float32 `json:"League" db:"League"`
	WOBAScale float32 `json:"wOBAScale" db:"wOBAScale"`
	WBB       float32 `json:"wBB" db:"wBB"`
	WHBP      float32 `json:"wHBP" db:"wHBP"`
	W1B       float32 `json:"w1B" db:"w1B"`
	W2B       float32 `json:"w2B" db:"w2B"`
	W3B       float32 `json:"w3B" db:"w3B"`
	WHR       float32 `json:"wHR" db:"wHR"`
	RunSB     float32 `json:"runSB" db:"runSB"`
	RunCS     float32 `json:"runCS" db:"runCS"`
	RPA       float32 `json:"R_PA" db:"R_PA"`
	RW        float32 `json:"R_W" db:"R_W"`
	CFIP      float32 `json:"cFIP" db:"cFIP"`
}

func (WobaWeights) TableName() string { return "wobaweights" }

// Models returns a zero value of every row type, in catalog order.
func Models() []Model {
	return []Model{
		Person{}, Manager{}, Award{}, AwardShare{}, Batting{}, BattingPost{},
		CareerWarLeader{}, SeasonWarLeader{}, Draft{}, HallOfFame{}, NoHitter{},
		League{}, CollegePlaying{}, Team{}, AllstarFull{}, School{}, SeriesPost{},
		Pitching{}, PitchingPost{}, Appearances{}, Fielding{}, FieldingPost{},
		Salary{}, HomeGame{}, Park{}, Division{}, WobaWeights{},
	}
}
