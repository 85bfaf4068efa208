package database

import (
	"fmt"

	"github.com/example/voicetutor/pkg/models"
)

// SentenceBankRepository persists the drill sentence bank.
type SentenceBankRepository struct{}

func NewSentenceBankRepository() *SentenceBankRepository {
	return &SentenceBankRepository{}
}

// BulkInsert loads bank rows in one transaction, skipping duplicates so
// imports can be re-run.
func (r *SentenceBankRepository) BulkInsert(sentences []models.BankSentence) error {
	err := withRetry("bulk insert sentence bank", func() error {
		tx, err := DB.Beginx()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		for _, s := range sentences {
			if _, err := tx.Exec(`
				INSERT INTO sentence_bank (level, category, english, arabic)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (level, category, english) DO NOTHING`,
				s.Level, s.Category, s.English, s.Arabic); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("failed to bulk insert sentence bank: %w", err)
	}
	return nil
}

// ByLevel returns up to limit sentences for a drill level across all
// categories. A zero limit means no limit.
func (r *SentenceBankRepository) ByLevel(level, limit int) ([]models.BankSentence, error) {
	query := `
		SELECT level, category, english, arabic
		FROM sentence_bank
		WHERE level = $1
		ORDER BY category, english`
	args := []interface{}{level}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var sentences []models.BankSentence
	err := withRetry("list sentence bank by level", func() error {
		return DB.Select(&sentences, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sentence bank: %w", err)
	}
	return sentences, nil
}

// ByCategory returns a category's sentences for one level.
func (r *SentenceBankRepository) ByCategory(level int, category string) ([]models.BankSentence, error) {
	var sentences []models.BankSentence
	err := withRetry("list sentence bank by category", func() error {
		return DB.Select(&sentences, `
			SELECT level, category, english, arabic
			FROM sentence_bank
			WHERE level = $1 AND category = $2
			ORDER BY english`, level, category)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sentence bank: %w", err)
	}
	return sentences, nil
}

// Count returns the number of bank rows.
func (r *SentenceBankRepository) Count() (int, error) {
	var count int
	err := withRetry("count sentence bank", func() error {
		return DB.Get(&count, `SELECT COUNT(*) FROM sentence_bank`)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count sentence bank: %w", err)
	}
	return count, nil
}
