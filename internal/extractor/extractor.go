package extractor

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Kart8ik/LeetCode-Analytics-Platform/internal/leetcode"
	model "github.com/Kart8ik/LeetCode-Analytics-Platform/internal/models"
)

// CountByLabel cherche dans une liste de buckets l'entrée dont le label de
// difficulté contient label (insensible à la casse) et renvoie son compteur.
//
// Le pseudo-label "all" a un double chemin : d'abord une entrée explicitement
// étiquetée "All" (ou sans étiquette), sinon la somme de toutes les entrées.
// Les deux chemins peuvent diverger d'une somme naïve easy+medium+hard,
// c'est une particularité connue des données de la source, pas un bug.
func CountByLabel(buckets []leetcode.SubmissionBucket, label string) int {
	if len(buckets) == 0 {
		return 0
	}
	label = strings.ToLower(label)
	for _, b := range buckets {
		d := strings.ToLower(b.Difficulty)
		if label == "all" && (d == "all" || d == "") {
			return bucketValue(b)
		}
		if strings.Contains(d, label) {
			return bucketValue(b)
		}
	}
	if label == "all" {
		total := 0
		for _, b := range buckets {
			total += bucketValue(b)
		}
		return total
	}
	return 0
}

// bucketValue préfère count, se rabat sur submissions, sinon 0.
func bucketValue(b leetcode.SubmissionBucket) int {
	if b.Count != nil {
		return b.Count.Int()
	}
	if b.Submissions != nil {
		return b.Submissions.Int()
	}
	return 0
}

// AcceptanceRate calcule round(100*acceptées/total, 2) à partir des agrégats
// "all" des deux listes, ou nil quand le total est nul ou inconnu.
func AcceptanceRate(ac, total []leetcode.SubmissionBucket) *float64 {
	totalAll := CountByLabel(total, "all")
	if totalAll == 0 {
		return nil
	}
	acAll := CountByLabel(ac, "all")
	rate := math.Round(float64(acAll)/float64(totalAll)*100*100) / 100
	return &rate
}

// FlattenTopics aplatit les trois paliers de tags dans l'ordre advanced,
// intermediate, fundamental. Un palier absent ne contribue rien.
func FlattenTopics(tags *leetcode.TagProblemCounts) []model.TopicStat {
	if tags == nil {
		return nil
	}
	tiers := []struct {
		name  string
		items []leetcode.TagCount
	}{
		{"advanced", tags.Advanced},
		{"intermediate", tags.Intermediate},
		{"fundamental", tags.Fundamental},
	}

	var out []model.TopicStat
	for _, tier := range tiers {
		for _, it := range tier.items {
			out = append(out, model.TopicStat{
				TagName:         it.TagName,
				DifficultyLevel: tier.name,
				ProblemsSolved:  int(it.ProblemsSolved),
			})
		}
	}
	return out
}

// SafeJSON encode v en JSON ; en cas d'échec on retombe sur la représentation
// texte plutôt que de perdre l'enregistrement entier.
func SafeJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		fallback, _ := json.Marshal(fmt.Sprint(v))
		return string(fallback)
	}
	return string(b)
}
