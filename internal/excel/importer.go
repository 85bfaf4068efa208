package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/voicetutor/internal/database"
	"github.com/example/voicetutor/internal/topics"
	"github.com/example/voicetutor/pkg/models"
	"github.com/xuri/excelize/v2"
)

// Translator fills in Arabic translations for rows that arrive without
// one. *ai.ChatGPT satisfies it.
type Translator interface {
	TranslateToArabic(text string) (string, error)
}

// ImportConfig defines how sentence bank rows are read from a file.
// Columns are Excel-style letters.
type ImportConfig struct {
	FilePath       string     // Path to the Excel or CSV file
	LevelColumn    string     // Column with the drill level (1-5)
	CategoryColumn string     // Column with the category name
	EnglishColumn  string     // Column with the English sentence
	ArabicColumn   string     // Column with the Arabic translation
	SheetName      string     // Name of the sheet to import
	StartRow       int        // The row to start importing from (1-based index)
	Translator     Translator // Optional, fills missing Arabic translations
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		LevelColumn:    "A",
		CategoryColumn: "B",
		EnglishColumn:  "C",
		ArabicColumn:   "D",
		SheetName:      "Sheet1",
		StartRow:       2, // skip header
	}
}

// ImportResult holds the result of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Translated     int
	Errors         []string
}

// ImportSentences loads sentence bank rows from an Excel or CSV file.
func ImportSentences(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	var batch []models.BankSentence

	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		sentence, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		batch = append(batch, sentence)
	}

	return flush(batch, config, result)
}

func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	var batch []models.BankSentence

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		sentence, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		batch = append(batch, sentence)
	}

	return flush(batch, config, result)
}

func flush(batch []models.BankSentence, config ImportConfig, result *ImportResult) (*ImportResult, error) {
	if config.Translator != nil {
		fillTranslations(batch, config.Translator, result)
	}
	if len(batch) > 0 {
		repo := database.NewSentenceBankRepository()
		if err := repo.BulkInsert(batch); err != nil {
			return nil, err
		}
	}
	result.Imported = len(batch)
	return result, nil
}

// fillTranslations translates rows with an empty Arabic column. Failures
// leave the row untranslated and are reported alongside the row errors.
func fillTranslations(batch []models.BankSentence, tr Translator, result *ImportResult) {
	for i := range batch {
		if batch[i].Arabic != "" {
			continue
		}
		arabic, err := tr.TranslateToArabic(batch[i].English)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("translate %q: %v", batch[i].English, err))
			continue
		}
		batch[i].Arabic = arabic
		result.Translated++
	}
}

// parseRow validates one bank row: level must be 1-5 and the category must
// be one of the known drill categories.
func parseRow(row []string, config ImportConfig) (models.BankSentence, error) {
	var levelStr, category, english, arabic string
	if idx := columnToIndex(config.LevelColumn); idx < len(row) {
		levelStr = strings.TrimSpace(row[idx])
	}
	if idx := columnToIndex(config.CategoryColumn); idx < len(row) {
		category = strings.TrimSpace(row[idx])
	}
	if idx := columnToIndex(config.EnglishColumn); idx < len(row) {
		english = strings.TrimSpace(row[idx])
	}
	if idx := columnToIndex(config.ArabicColumn); idx < len(row) {
		arabic = strings.TrimSpace(row[idx])
	}

	if english == "" {
		return models.BankSentence{}, fmt.Errorf("english sentence cannot be empty")
	}

	var level int
	if _, err := fmt.Sscanf(levelStr, "%d", &level); err != nil {
		return models.BankSentence{}, fmt.Errorf("invalid level %q", levelStr)
	}
	if level < 1 || level > topics.SentenceLevels {
		return models.BankSentence{}, fmt.Errorf("level %d out of range 1-%d", level, topics.SentenceLevels)
	}

	if !topics.ValidSentenceCategory(category) {
		return models.BankSentence{}, fmt.Errorf("unknown category %q", category)
	}

	return models.BankSentence{
		Level:    level,
		Category: category,
		English:  english,
		Arabic:   arabic,
	}, nil
}

// columnToIndex converts an Excel column letter to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
