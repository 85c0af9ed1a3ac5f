package store

import (
	"path/filepath"

	"github.com/google/uuid"

	"yt-comment-archiver/internal/model"
)

const runsDirName = ".runs"

func NewRunID() string {
	return uuid.NewString()
}

func RunReportPath(root, runID string) string {
	return filepath.Join(root, runsDirName, runID+".json")
}

func SaveRunReport(root string, report model.RunReport) error {
	return WriteJSON(RunReportPath(root, report.RunID), report)
}
