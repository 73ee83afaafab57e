package scanner

import (
	"database/sql"

	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/utils"
)

// ScanTrackedUser scanne une ligne SQL vers un TrackedUser
func ScanTrackedUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.TrackedUser, error) {
	var u model.TrackedUser

	if err := scanner.Scan(&u.UserID, &u.Username); err != nil {
		return nil, err
	}

	return &u, nil
}

// ScanProblemStats scanne une ligne de problem_stats vers un UserRecord partiel
// Utilise les types sql.Null* et les convertit automatiquement
func ScanProblemStats(scanner interface {
	Scan(dest ...interface{}) error
}) (*model.UserRecord, error) {
	var rec model.UserRecord
	var easy, medium, hard, total sql.NullInt64
	var rate sql.NullFloat64

	err := scanner.Scan(&rec.Username, &easy, &medium, &hard, &total, &rate)
	if err != nil {
		return nil, err
	}

	// Conversions
	rec.EasySolved = utils.NullInt64ToInt(easy)
	rec.MediumSolved = utils.NullInt64ToInt(medium)
	rec.HardSolved = utils.NullInt64ToInt(hard)
	rec.TotalSolved = utils.NullInt64ToInt(total)
	rec.AcceptanceRate = utils.NullFloat64ToPointer(rate)

	return &rec, nil
}
