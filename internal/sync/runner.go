package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/extractor"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/leetcode"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/logger"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/metrics"
	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
	"github.com/google/uuid"
)

// Fetcher est la surface du client distant vue par l'orchestrateur.
type Fetcher interface {
	FetchUserData(ctx context.Context, username string, limit int) (*leetcode.Response, error)
}

// UserSource liste les utilisateurs suivis.
type UserSource interface {
	ListTrackedUsers(ctx context.Context) ([]model.TrackedUser, error)
}

// RecordWriter pousse un enregistrement canonique vers le store. Contient
// ses propres échecs, ne renvoie rien.
type RecordWriter interface {
	Write(ctx context.Context, userID string, rec *model.UserRecord)
}

// Pacing est la politique de cadence injectée dans l'orchestrateur : la
// pause entre deux utilisateurs est un paramètre, pas un sleep enfoui.
type Pacing struct {
	RequestDelay time.Duration
}

// Summary résume un run complet.
type Summary struct {
	RunID    uuid.UUID     `json:"runId"`
	Total    int           `json:"total"`
	Synced   int           `json:"synced"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

type outcome int

const (
	outcomeSynced outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeSynced:
		return "synced"
	case outcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// Runner déroule le batch : chargement des utilisateurs, pipeline séquentiel
// par utilisateur, pause fixe entre chacun. Aucun échec individuel ne
// termine le batch.
type Runner struct {
	fetcher     Fetcher
	source      UserSource
	writer      RecordWriter
	pacing      Pacing
	recentLimit int

	sleep func(time.Duration) // remplaçable dans les tests
}

func NewRunner(fetcher Fetcher, source UserSource, writer RecordWriter, pacing Pacing, recentLimit int) *Runner {
	return &Runner{
		fetcher:     fetcher,
		source:      source,
		writer:      writer,
		pacing:      pacing,
		recentLimit: recentLimit,
		sleep:       time.Sleep,
	}
}

// Run exécute un run complet et renvoie son résumé. Seule une liste
// d'utilisateurs illisible fait échouer le run lui-même.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{RunID: uuid.New()}

	logger.Info("Sync run %s starting", summary.RunID)

	users, err := r.source.ListTrackedUsers(ctx)
	if err != nil {
		metrics.RunsTotal.WithLabelValues("aborted").Inc()
		return nil, fmt.Errorf("could not load tracked users: %w", err)
	}

	if len(users) == 0 {
		logger.Warning("No tracked users found, nothing to sync")
		metrics.RunsTotal.WithLabelValues("empty").Inc()
		summary.Duration = time.Since(start)
		return summary, nil
	}

	summary.Total = len(users)
	logger.Info("Loaded %d tracked users", len(users))

	for _, u := range users {
		result := r.syncUser(ctx, u)
		metrics.UsersProcessedTotal.WithLabelValues(result.String()).Inc()
		switch result {
		case outcomeSynced:
			summary.Synced++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}

		// pause fixe après chaque utilisateur, quel que soit le résultat
		r.sleep(r.pacing.RequestDelay)
	}

	summary.Duration = time.Since(start)
	metrics.RunsTotal.WithLabelValues("completed").Inc()
	metrics.RunDurationSeconds.Observe(summary.Duration.Seconds())

	logger.Success("Run %s complete: %d synced, %d skipped, %d failed (of %d) in %s",
		summary.RunID, summary.Synced, summary.Skipped, summary.Failed, summary.Total, summary.Duration)

	return summary, nil
}

// syncUser déroule requête → extraction → normalisation → écriture pour un
// utilisateur. Toute panique est récupérée ici : l'utilisateur passe en
// échec, le batch continue, aucune ligne partielle n'est écrite.
func (r *Runner) syncUser(ctx context.Context, u model.TrackedUser) (result outcome) {
	start := time.Now()
	defer func() {
		metrics.UserSyncDurationSeconds.Observe(time.Since(start).Seconds())
		if rec := recover(); rec != nil {
			logger.Error("Unexpected failure while syncing %s: %v", u.Username, rec)
			result = outcomeFailed
		}
	}()

	logger.Info("Fetching %s", u.Username)

	resp, err := r.fetcher.FetchUserData(ctx, u.Username, r.recentLimit)
	if err != nil {
		logger.Warning("No data for %s, skipping: %v", u.Username, err)
		return outcomeSkipped
	}

	if resp == nil || resp.Data == nil || resp.Data.MatchedUser == nil {
		logger.Warning("No matched user for %s, skipping", u.Username)
		return outcomeSkipped
	}

	rec := extractor.BuildRecord(u.Username, resp)
	r.writer.Write(ctx, u.UserID, rec)

	logger.Success("Synced %s (total solved: %d)", u.Username, rec.TotalSolved)
	return outcomeSynced
}
