package extractor

import (
	"time"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/leetcode"
	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
)

// BuildRecord assemble l'enregistrement canonique d'un utilisateur à partir
// de la réponse brute. Purement en mémoire : aucun objet imbriqué absent ne
// fait échouer l'assemblage, tout manque devient vide ou zéro.
func BuildRecord(username string, resp *leetcode.Response) *model.UserRecord {
	rec := &model.UserRecord{
		Username:           username,
		SubmissionCalendar: "{}",
		RecentSubmissions:  "[]",
		FetchedAt:          time.Now().UTC(),
	}

	if resp == nil || resp.Data == nil {
		return rec
	}

	rec.RecentSubmissions = SafeJSON(nonNilSubmissions(resp.Data.RecentAcSubmissionList))

	user := resp.Data.MatchedUser
	if user == nil {
		return rec
	}

	if prof := user.Profile; prof != nil {
		rec.RealName = prof.RealName
		rec.Avatar = prof.UserAvatar
		if prof.Ranking != nil {
			rank := *prof.Ranking
			rec.Rank = &rank
		}
	}

	if stats := user.SubmitStats; stats != nil {
		ac := stats.AcSubmissionNum
		rec.EasySolved = CountByLabel(ac, "easy")
		rec.MediumSolved = CountByLabel(ac, "medium")
		rec.HardSolved = CountByLabel(ac, "hard")
		// total_solved vient du bucket "all", jamais de la somme des trois
		rec.TotalSolved = CountByLabel(ac, "all")
		rec.AcceptanceRate = AcceptanceRate(ac, stats.TotalSubmissionNum)
	}

	for _, lang := range user.LanguageProblemCount {
		rec.LanguageStats = append(rec.LanguageStats, model.LanguageStat{
			LanguageName:   lang.LanguageName,
			ProblemsSolved: lang.ProblemsSolved,
		})
	}

	rec.TopicStats = FlattenTopics(user.TagProblemCounts)
	rec.BadgeCount = len(user.Badges)

	if cal := user.UserCalendar; cal != nil {
		rec.StreakCount = cal.Streak
		rec.TotalActiveDays = cal.TotalActiveDays
		if cal.SubmissionCalendar != "" {
			// déjà une chaîne JSON côté source, gardée telle quelle
			rec.SubmissionCalendar = cal.SubmissionCalendar
		}
	}

	return rec
}

func nonNilSubmissions(subs []leetcode.RecentSubmission) []leetcode.RecentSubmission {
	if subs == nil {
		return []leetcode.RecentSubmission{}
	}
	return subs
}
