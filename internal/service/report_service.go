package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/lshigami/SkillCheck/internal/dto"
)

type ReportService interface {
	// RenderAttemptReport returns a PDF summary of a graded attempt.
	RenderAttemptReport(attempt *dto.TestAttemptDetailDTO) ([]byte, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

func (s *reportService) RenderAttemptReport(attempt *dto.TestAttemptDetailDTO) ([]byte, error) {
	if attempt == nil {
		return nil, fmt.Errorf("no attempt to render")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(attempt.TestTitle), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, tr(attempt.TestTitle), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	candidate := attempt.CandidateName
	if candidate == "" {
		candidate = "Anonymous candidate"
	}
	if attempt.CandidateEmail != "" {
		candidate += " <" + attempt.CandidateEmail + ">"
	}
	pdf.Cell(0, 6, tr("Candidate: "+candidate))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Submitted: "+attempt.SubmittedAt.UTC().Format(time.RFC1123))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Multiple-choice score: %d / %d (%d%%)", attempt.Score, attempt.TotalMultipleChoice, attempt.Percentage))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Status: "+attempt.Status)
	pdf.Ln(6)
	if attempt.HasNonGradable {
		pdf.Cell(0, 6, "Contains free-form or coding answers that require manual or AI review.")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for i, a := range attempt.Answers {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. [%s] %s", i+1, a.QuestionType, a.QuestionText)), "", "L", false)

		pdf.SetFont("Arial", "", 10)
		if a.SelectedOptionID != "" || a.CorrectOptionID != "" {
			pdf.MultiCell(0, 5, fmt.Sprintf("Selected: %s   Correct: %s", orDash(a.SelectedOptionID), orDash(a.CorrectOptionID)), "", "L", false)
		} else if a.UserAnswer != "" {
			pdf.MultiCell(0, 5, tr("Answer: "+a.UserAnswer), "", "L", false)
		}
		pdf.MultiCell(0, 5, tr("Feedback: "+a.Feedback), "", "L", false)
		if a.GradingError != "" {
			pdf.MultiCell(0, 5, tr("Grading error: "+a.GradingError), "", "L", false)
		}
		if len(a.AIReview) > 0 {
			pdf.MultiCell(0, 5, tr("AI review: "+string(a.AIReview)), "", "L", false)
		} else if a.AIReviewError != "" {
			pdf.MultiCell(0, 5, tr("AI review failed: "+a.AIReviewError), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
