package model

import "time"

// TrackedUser est une ligne de la table users : l'identifiant stable côté
// plateforme et le pseudo LeetCode utilisé comme clé de requête distante.
type TrackedUser struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// UserRecord est l'enregistrement canonique d'un utilisateur pour un run :
// construit en mémoire, poussé vers les cinq tables, puis jeté.
type UserRecord struct {
	Username string `json:"username"`
	RealName string `json:"realName,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Rank     *int   `json:"rank,omitempty"`

	EasySolved     int      `json:"easySolved"`
	MediumSolved   int      `json:"mediumSolved"`
	HardSolved     int      `json:"hardSolved"`
	TotalSolved    int      `json:"totalSolved"`
	AcceptanceRate *float64 `json:"acceptanceRate,omitempty"` // [0,100], nil si aucune soumission

	LanguageStats []LanguageStat `json:"languageStats"`
	TopicStats    []TopicStat    `json:"topicStats"`
	BadgeCount    int            `json:"badgeCount"`

	StreakCount        int    `json:"streakCount"`
	TotalActiveDays    int    `json:"totalActiveDays"`
	SubmissionCalendar string `json:"submissionCalendar"` // blob JSON date→count, opaque

	RecentSubmissions string `json:"recentSubmissions"` // blob JSON, ordre de la source conservé

	FetchedAt time.Time `json:"fetchedAt"`
}

// LanguageStat compte les problèmes résolus par langage.
type LanguageStat struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

// TopicStat compte les problèmes résolus par tag, étiqueté par palier
// (advanced, intermediate, fundamental).
type TopicStat struct {
	TagName         string `json:"tag_name"`
	DifficultyLevel string `json:"difficulty_level"`
	ProblemsSolved  int    `json:"problems_solved"`
}
