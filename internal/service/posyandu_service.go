package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/models"
	"posyandu/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrInvalidInput marks request validation failures. Use FieldErrors to get
// the per-field details.
var ErrInvalidInput = errors.New("invalid input")

type invalidInputError struct {
	fields map[string]string
}

func (e *invalidInputError) Error() string { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error { return ErrInvalidInput }

// FieldErrors returns field name -> failed rule for a validation error.
func FieldErrors(err error) map[string]string {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.fields
	}
	return nil
}

type PosyanduService struct {
	storage  storage.PosyanduStorage
	validate *validator.Validate
}

func NewPosyanduService(storage storage.PosyanduStorage) *PosyanduService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &PosyanduService{
		storage:  storage,
		validate: validate,
	}
}

func (s *PosyanduService) validateRequest(req *models.PosyanduRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("PosyanduService.validateRequest - validate failed: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &invalidInputError{fields: fields}
}

func trimRequest(req *models.PosyanduRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	req.Kelurahan = strings.TrimSpace(req.Kelurahan)
	req.Kecamatan = strings.TrimSpace(req.Kecamatan)
}

func (s *PosyanduService) AddPosyandu(ctx context.Context, req *models.PosyanduRequest) (*models.Posyandu, error) {
	utils.Logger.Debug("PosyanduService.AddPosyandu", zap.String("name", req.Name), zap.String("kecamatan", req.Kecamatan))

	trimRequest(req)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	created, err := s.storage.Create(ctx, &models.Posyandu{
		Name:      req.Name,
		Address:   req.Address,
		Kelurahan: req.Kelurahan,
		Kecamatan: req.Kecamatan,
	})
	if err != nil {
		utils.Logger.Error("PosyanduService.AddPosyandu - storage.Create failed", zap.Error(err))
		return nil, fmt.Errorf("PosyanduService.AddPosyandu - storage.Create failed: %w", err)
	}

	utils.Logger.Info("PosyanduService.AddPosyandu - posyandu added", zap.Int("posyandu_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// ListPosyandu returns one page of posyandu together with its meta.
func (s *PosyanduService) ListPosyandu(ctx context.Context, filter *models.PosyanduFilter, pagination *models.Pagination) (*models.Page[models.Posyandu], error) {
	utils.Logger.Debug("PosyanduService.ListPosyandu", zap.Any("filter", filter), zap.Any("pagination", pagination))

	items, total, err := s.storage.List(ctx, filter, pagination)
	if err != nil {
		utils.Logger.Error("PosyanduService.ListPosyandu - storage.List failed", zap.Error(err), zap.Any("filter", filter), zap.Any("pagination", pagination))
		return nil, fmt.Errorf("PosyanduService.ListPosyandu - storage.List failed: %w", err)
	}
	if items == nil {
		items = []models.Posyandu{}
	}

	return &models.Page[models.Posyandu]{
		Data: items,
		Meta: models.NewMeta(total, pagination),
	}, nil
}

func (s *PosyanduService) GetPosyandu(ctx context.Context, id int) (*models.Posyandu, error) {
	utils.Logger.Debug("PosyanduService.GetPosyandu", zap.Int("id", id))

	posyandu, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrPosyanduNotFound) {
			return nil, storage.ErrPosyanduNotFound
		}
		utils.Logger.Error("PosyanduService.GetPosyandu - storage.GetByID failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PosyanduService.GetPosyandu - storage.GetByID failed: %w", err)
	}
	return posyandu, nil
}

func (s *PosyanduService) UpdatePosyandu(ctx context.Context, id int, req *models.PosyanduRequest) (*models.Posyandu, error) {
	utils.Logger.Debug("PosyanduService.UpdatePosyandu", zap.Int("id", id), zap.String("name", req.Name))

	trimRequest(req)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	updated, err := s.storage.Update(ctx, &models.Posyandu{
		ID:        id,
		Name:      req.Name,
		Address:   req.Address,
		Kelurahan: req.Kelurahan,
		Kecamatan: req.Kecamatan,
	})
	if err != nil {
		if errors.Is(err, storage.ErrPosyanduNotFound) {
			return nil, storage.ErrPosyanduNotFound
		}
		utils.Logger.Error("PosyanduService.UpdatePosyandu - storage.Update failed", zap.Error(err), zap.Int("id", id))
		return nil, fmt.Errorf("PosyanduService.UpdatePosyandu - storage.Update failed: %w", err)
	}
	utils.Logger.Info("PosyanduService.UpdatePosyandu - posyandu updated", zap.Int("posyandu_id", updated.ID))
	return updated, nil
}

func (s *PosyanduService) DeletePosyandu(ctx context.Context, id int) error {
	utils.Logger.Debug("PosyanduService.DeletePosyandu", zap.Int("id", id))

	if err := s.storage.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrPosyanduNotFound) {
			return storage.ErrPosyanduNotFound
		}
		utils.Logger.Error("PosyanduService.DeletePosyandu - storage.Delete failed", zap.Error(err), zap.Int("id", id))
		return fmt.Errorf("PosyanduService.DeletePosyandu - storage.Delete failed: %w", err)
	}
	utils.Logger.Info("PosyanduService.DeletePosyandu - posyandu deleted", zap.Int("posyandu_id", id))
	return nil
}
