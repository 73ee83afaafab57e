package storage

import (
	"context"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/logger"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/metrics"
	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
)

// Writer pousse un enregistrement canonique vers les cinq tables de
// destination. Chaque groupe d'écriture est indépendant : un échec est
// loggé et compté mais ne bloque ni les groupes suivants ni les autres
// utilisateurs. Toutes les écritures sont idempotentes (upserts sur clés
// naturelles), relancer le batch répare un run partiel.
type Writer struct {
	db Execer
}

func NewWriter(db Execer) *Writer {
	return &Writer{db: db}
}

// Write fan-out : profil (update seul), problem_stats, progress_stats,
// language_stats (une ligne par langage), topic_stats (une ligne par
// (tag, palier)). Ne renvoie jamais d'erreur au-delà de sa frontière.
func (w *Writer) Write(ctx context.Context, userID string, rec *model.UserRecord) {
	w.updateProfile(ctx, userID, rec)
	w.upsertProblemStats(ctx, userID, rec)
	w.upsertProgressStats(ctx, userID, rec)
	w.upsertLanguageStats(ctx, userID, rec)
	w.upsertTopicStats(ctx, userID, rec)
}

// updateProfile ne crée jamais de ligne : la table users appartient à la
// plateforme, on ne fait que rafraîchir avatar, rang et timestamp.
func (w *Writer) updateProfile(ctx context.Context, userID string, rec *model.UserRecord) {
	_, err := w.db.Exec(ctx,
		`UPDATE users SET user_url=$1, global_rank=$2, updated_at=NOW() WHERE user_id=$3`,
		rec.Avatar, rec.Rank, userID,
	)
	if err != nil {
		w.reportFailure("users", userID, err)
	}
}

func (w *Writer) upsertProblemStats(ctx context.Context, userID string, rec *model.UserRecord) {
	_, err := w.db.Exec(ctx,
		`INSERT INTO problem_stats (user_id, easy_solved, medium_solved, hard_solved, total_solved, acceptance_rate)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id) DO UPDATE SET
		   easy_solved=EXCLUDED.easy_solved,
		   medium_solved=EXCLUDED.medium_solved,
		   hard_solved=EXCLUDED.hard_solved,
		   total_solved=EXCLUDED.total_solved,
		   acceptance_rate=EXCLUDED.acceptance_rate`,
		userID, rec.EasySolved, rec.MediumSolved, rec.HardSolved, rec.TotalSolved, rec.AcceptanceRate,
	)
	if err != nil {
		w.reportFailure("problem_stats", userID, err)
	}
}

func (w *Writer) upsertProgressStats(ctx context.Context, userID string, rec *model.UserRecord) {
	_, err := w.db.Exec(ctx,
		`INSERT INTO progress_stats (user_id, streak_count, badge_count, submission_calendar_json, recent_submissions, total_active_days)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id) DO UPDATE SET
		   streak_count=EXCLUDED.streak_count,
		   badge_count=EXCLUDED.badge_count,
		   submission_calendar_json=EXCLUDED.submission_calendar_json,
		   recent_submissions=EXCLUDED.recent_submissions,
		   total_active_days=EXCLUDED.total_active_days`,
		userID, rec.StreakCount, rec.BadgeCount, rec.SubmissionCalendar, rec.RecentSubmissions, rec.TotalActiveDays,
	)
	if err != nil {
		w.reportFailure("progress_stats", userID, err)
	}
}

// upsertLanguageStats boucle par langage ; le groupe entier est contenu, un
// échec n'empêche pas topic_stats ni les écritures précédentes.
func (w *Writer) upsertLanguageStats(ctx context.Context, userID string, rec *model.UserRecord) {
	for _, lang := range rec.LanguageStats {
		_, err := w.db.Exec(ctx,
			`INSERT INTO language_stats (user_id, language_name, problems_solved)
			 VALUES ($1,$2,$3)
			 ON CONFLICT (user_id, language_name) DO UPDATE SET
			   problems_solved=EXCLUDED.problems_solved`,
			userID, lang.LanguageName, lang.ProblemsSolved,
		)
		if err != nil {
			w.reportFailure("language_stats", userID, err)
			return
		}
	}
}

func (w *Writer) upsertTopicStats(ctx context.Context, userID string, rec *model.UserRecord) {
	for _, topic := range rec.TopicStats {
		_, err := w.db.Exec(ctx,
			`INSERT INTO topic_stats (user_id, tag_name, difficulty_level, problems_solved)
			 VALUES ($1,$2,$3,$4)
			 ON CONFLICT (user_id, tag_name, difficulty_level) DO UPDATE SET
			   problems_solved=EXCLUDED.problems_solved`,
			userID, topic.TagName, topic.DifficultyLevel, topic.ProblemsSolved,
		)
		if err != nil {
			w.reportFailure("topic_stats", userID, err)
			return
		}
	}
}

func (w *Writer) reportFailure(table, userID string, err error) {
	metrics.WriteFailuresTotal.WithLabelValues(table).Inc()
	logger.Warning("%s write failed for %s: %v", table, userID, err)
}
