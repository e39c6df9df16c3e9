// Package excel imports curated content from spreadsheets: flashcard
// words and question-bank templates. Supports .xlsx and .csv.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/pkg/models"
)

// ImportResult holds the outcome of an import operation
type ImportResult struct {
	TotalProcessed int
	TopicsCreated  int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportWords imports flashcard words. Expected columns:
// english, russian, kazakh, example, topic, level, pronunciation.
func ImportWords(filePath, sheetName string) (*ImportResult, error) {
	rows, err := readRows(filePath, sheetName)
	if err != nil {
		return nil, err
	}

	wordRepo := database.NewWordRepository()
	result := &ImportResult{}
	topicIDs := make(map[string]int64)

	for i, row := range rows {
		if i == 0 { // header
			continue
		}
		result.TotalProcessed++

		if len(row) < 5 || strings.TrimSpace(cell(row, 0)) == "" {
			result.Skipped++
			continue
		}

		topicName := strings.TrimSpace(cell(row, 4))
		topicID, ok := topicIDs[topicName]
		if !ok {
			topicID, err = database.GetOrCreateTopic(topicName)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
				continue
			}
			topicIDs[topicName] = topicID
			result.TopicsCreated++
		}

		word := &models.Word{
			English:       strings.TrimSpace(cell(row, 0)),
			Russian:       strings.TrimSpace(cell(row, 1)),
			Kazakh:        strings.TrimSpace(cell(row, 2)),
			Example:       strings.TrimSpace(cell(row, 3)),
			TopicID:       topicID,
			Level:         strings.TrimSpace(cell(row, 5)),
			Pronunciation: strings.TrimSpace(cell(row, 6)),
		}
		if err := wordRepo.Upsert(word); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportQuestionBank imports question templates that extend the in-code
// lesson banks. Expected columns:
// topic, question, option a, option b, option c, option d, correct (0-3), explanation.
func ImportQuestionBank(filePath, sheetName string) (*ImportResult, error) {
	rows, err := readRows(filePath, sheetName)
	if err != nil {
		return nil, err
	}

	bankRepo := database.NewBankRepository()
	result := &ImportResult{}

	for i, row := range rows {
		if i == 0 { // header
			continue
		}
		result.TotalProcessed++

		if len(row) < 7 || strings.TrimSpace(cell(row, 1)) == "" {
			result.Skipped++
			continue
		}

		correct, err := strconv.Atoi(strings.TrimSpace(cell(row, 6)))
		if err != nil || correct < 0 || correct > 3 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: correct answer must be 0-3", i+1))
			continue
		}

		tmpl := models.QuestionTemplate{
			Question: strings.TrimSpace(cell(row, 1)),
			Options: []string{
				strings.TrimSpace(cell(row, 2)),
				strings.TrimSpace(cell(row, 3)),
				strings.TrimSpace(cell(row, 4)),
				strings.TrimSpace(cell(row, 5)),
			},
			Correct:     correct,
			Explanation: strings.TrimSpace(cell(row, 7)),
		}
		if err := bankRepo.SaveTemplate(strings.TrimSpace(cell(row, 0)), tmpl); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

// readRows loads all rows from an .xlsx sheet or a .csv file.
func readRows(filePath, sheetName string) ([][]string, error) {
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		return readCSV(filePath)
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}
	return rows, nil
}

func readCSV(filePath string) ([][]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may have trailing blanks trimmed

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %v", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// cell reads a column that may be absent on short rows.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
