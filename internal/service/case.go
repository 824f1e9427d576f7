package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/repository"
	"github.com/unionlaw/lawfirm/internal/validation"
)

// Placeholder shown in the admin listing when a case's owner no longer exists.
const UnknownOwner = "Unknown"

type CaseService struct {
	caseRepository repository.CaseRepository
	userRepository repository.UserRepository
	fileService    *FileService
	emailService   *EmailService
}

func NewCaseService(
	caseRepository repository.CaseRepository,
	userRepository repository.UserRepository,
	fileService *FileService,
	emailService *EmailService,
) *CaseService {
	return &CaseService{
		caseRepository: caseRepository,
		userRepository: userRepository,
		fileService:    fileService,
		emailService:   emailService,
	}
}

type CaseInput struct {
	CaseType    string
	Title       string
	Description string
}

func (in CaseInput) validate() error {
	if !model.ValidCaseType(in.CaseType) {
		return &ValidationError{Field: "case_type", Message: fmt.Sprintf("unknown case type %q", in.CaseType)}
	}
	err := validation.ValidateText("title", in.Title, 200)
	if err != nil {
		return invalid("title", err)
	}
	err = validation.ValidateText("description", in.Description, 10000)
	if err != nil {
		return invalid("description", err)
	}
	return nil
}

// Submit stores the attachments, then records the case as pending for owner.
func (s *CaseService) Submit(ctx context.Context, owner *model.User, in CaseInput, attachments []*multipart.FileHeader) (*model.Case, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	err := in.validate()
	if err != nil {
		return nil, err
	}

	files, err := s.fileService.SaveAttachments(ctx, attachments)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &model.Case{
		ID:          uuid.New().String(),
		UserID:      owner.ID,
		CaseType:    in.CaseType,
		Title:       in.Title,
		Description: in.Description,
		Status:      model.CaseStatusPending,
		Files:       files,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.caseRepository.Create(ctx, c)
	if err != nil {
		s.fileService.Remove(ctx, files)
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	slog.Info("case submitted", "case_id", c.ID, "user_id", owner.ID, "files", len(files))
	return c, nil
}

func (s *CaseService) ListForOwner(ctx context.Context, ownerID string) ([]*model.Case, error) {
	cases, err := s.caseRepository.ByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// Get returns ErrCaseNotFound for cases owned by someone else, so existence is never confirmed.
func (s *CaseService) Get(ctx context.Context, caseID, ownerID string) (*model.Case, error) {
	c, err := s.caseRepository.ByIDForUser(ctx, caseID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}
	return c, nil
}

func (s *CaseService) AdminListAll(ctx context.Context) ([]*model.AdminCase, error) {
	cases, err := s.caseRepository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	owners := map[string]*model.User{}
	result := make([]*model.AdminCase, 0, len(cases))
	for _, c := range cases {
		owner, seen := owners[c.UserID]
		if !seen {
			owner, err = s.userRepository.ByID(ctx, c.UserID)
			if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
				return nil, fmt.Errorf("failed to get case owner: %w", err)
			}
			owners[c.UserID] = owner
		}

		ac := &model.AdminCase{
			Case:      *c,
			UserName:  UnknownOwner,
			UserEmail: UnknownOwner,
			FileURLs:  s.fileService.URLs(c.Files),
		}
		if owner != nil {
			ac.UserName = owner.Name
			ac.UserEmail = owner.Email
		}
		result = append(result, ac)
	}

	return result, nil
}

// AdminSetStatus overwrites the status of any case. There is no transition graph:
// every status may follow every other.
func (s *CaseService) AdminSetStatus(ctx context.Context, caseID, status string) error {
	if !model.ValidCaseStatus(status) {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown case status %q", status)}
	}

	err := s.caseRepository.UpdateStatus(ctx, caseID, status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return ErrCaseNotFound
		}
		return fmt.Errorf("failed to update case status: %w", err)
	}

	slog.Info("case status updated", "case_id", caseID, "status", status)
	s.notifyOwner(ctx, caseID, status)
	return nil
}

func (s *CaseService) notifyOwner(ctx context.Context, caseID, status string) {
	c, err := s.caseRepository.ByID(ctx, caseID)
	if err != nil {
		slog.Warn("failed to load case for status email", "error", err, "case_id", caseID)
		return
	}

	owner, err := s.userRepository.ByID(ctx, c.UserID)
	if err != nil {
		slog.Warn("failed to load owner for status email", "error", err, "case_id", caseID)
		return
	}

	err = s.emailService.SendCaseStatusEmail(ctx, owner.Email, owner.Name, c.Title, status)
	if err != nil {
		slog.Warn("failed to send case status email", "error", err, "case_id", caseID, "email", owner.Email)
	}
}
