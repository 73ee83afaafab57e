package leetcode

import (
	"encoding/json"
	"strconv"
	"strings"
)

// La réponse distante est modélisée comme un arbre entièrement optionnel :
// chaque champ imbriqué peut manquer sans faire échouer le décodage.

type Response struct {
	Data *Data `json:"data"`
}

type Data struct {
	MatchedUser            *MatchedUser       `json:"matchedUser"`
	RecentAcSubmissionList []RecentSubmission `json:"recentAcSubmissionList"`
}

type MatchedUser struct {
	Username             string            `json:"username"`
	Profile              *Profile          `json:"profile"`
	Badges               []Badge           `json:"badges"`
	LanguageProblemCount []LanguageCount   `json:"languageProblemCount"`
	TagProblemCounts     *TagProblemCounts `json:"tagProblemCounts"`
	SubmitStats          *SubmitStats      `json:"submitStats"`
	UserCalendar         *UserCalendar     `json:"userCalendar"`
}

type Profile struct {
	RealName   string `json:"realName"`
	UserAvatar string `json:"userAvatar"`
	Ranking    *int   `json:"ranking"`
}

type Badge struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CreationDate json.RawMessage `json:"creationDate"`
	Icon         string          `json:"icon"`
}

type LanguageCount struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type TagProblemCounts struct {
	Advanced     []TagCount `json:"advanced"`
	Intermediate []TagCount `json:"intermediate"`
	Fundamental  []TagCount `json:"fundamental"`
}

type TagCount struct {
	TagName        string  `json:"tagName"`
	ProblemsSolved FlexInt `json:"problemsSolved"`
}

type SubmitStats struct {
	AcSubmissionNum    []SubmissionBucket `json:"acSubmissionNum"`
	TotalSubmissionNum []SubmissionBucket `json:"totalSubmissionNum"`
}

// SubmissionBucket est un élément d'une collection de compteurs, associé à un
// label de difficulté ou à l'agrégat "All".
type SubmissionBucket struct {
	Difficulty  string   `json:"difficulty"`
	Count       *FlexInt `json:"count"`
	Submissions *FlexInt `json:"submissions"`
}

type UserCalendar struct {
	Streak             int    `json:"streak"`
	TotalActiveDays    int    `json:"totalActiveDays"`
	SubmissionCalendar string `json:"submissionCalendar"`
}

type RecentSubmission struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TitleSlug string `json:"titleSlug"`
	Timestamp string `json:"timestamp"`
}

// FlexInt décode un entier depuis un nombre, une chaîne numérique, ou
// n'importe quoi d'autre (coercé à 0). La source renvoie parfois des
// compteurs sous forme de chaînes.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(int(n))
	return nil
}

func (f *FlexInt) Int() int {
	if f == nil {
		return 0
	}
	return int(*f)
}
