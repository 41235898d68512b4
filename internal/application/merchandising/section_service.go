package merchandising

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/merchandising"
	"github.com/storefront/backend/internal/domain/shared"
)

// SectionService handles dashboard management of home page sections
type SectionService struct {
	sectionRepo merchandising.SectionRepository
}

// NewSectionService creates a new SectionService
func NewSectionService(sectionRepo merchandising.SectionRepository) *SectionService {
	return &SectionService{sectionRepo: sectionRepo}
}

// Create creates a new section
func (s *SectionService) Create(ctx context.Context, storeID uuid.UUID, req CreateSectionRequest) (*SectionResponse, error) {
	sectionType := merchandising.SectionType(req.Type)
	if !sectionType.IsValid() {
		return nil, shared.NewDomainError("INVALID_SECTION_TYPE", "Unknown section type")
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	section, err := merchandising.NewSection(storeID, req.Name, sectionType, sortOrder)
	if err != nil {
		return nil, err
	}
	if req.DisplayStyle != "" {
		if err := section.SetDisplayStyle(merchandising.DisplayStyle(req.DisplayStyle)); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		section.SetActive(*req.Active)
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return NewSectionResponse(section), nil
}

// Update updates an existing section
func (s *SectionService) Update(ctx context.Context, storeID, sectionID uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error) {
	section, err := s.sectionRepo.FindByIDForStore(ctx, storeID, sectionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := section.Update(*req.Name, section.Type); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		section.SetSortOrder(*req.SortOrder)
	}
	if req.DisplayStyle != nil {
		if err := section.SetDisplayStyle(merchandising.DisplayStyle(*req.DisplayStyle)); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		section.SetActive(*req.Active)
	}

	if err := s.sectionRepo.Save(ctx, section); err != nil {
		return nil, err
	}
	return NewSectionResponse(section), nil
}

// List returns all sections for the store in sort order
func (s *SectionService) List(ctx context.Context, storeID uuid.UUID) ([]*SectionResponse, error) {
	sections, err := s.sectionRepo.FindAllForStore(ctx, storeID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	responses := make([]*SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, NewSectionResponse(&section))
	}
	return responses, nil
}

// Reorder rewrites the sort order of the store's sections to match the
// given ID sequence. Every section of the store must appear exactly once.
func (s *SectionService) Reorder(ctx context.Context, storeID uuid.UUID, req ReorderSectionsRequest) error {
	sections, err := s.sectionRepo.FindAllForStore(ctx, storeID, shared.DefaultFilter())
	if err != nil {
		return err
	}
	if len(sections) != len(req.SectionIDs) {
		return shared.NewDomainError("INVALID_REORDER", "Reorder must include every section exactly once")
	}

	byID := make(map[uuid.UUID]*merchandising.Section, len(sections))
	for i := range sections {
		byID[sections[i].ID] = &sections[i]
	}

	ordered := make([]*merchandising.Section, 0, len(req.SectionIDs))
	for position, id := range req.SectionIDs {
		section, ok := byID[id]
		if !ok {
			return shared.NewDomainError("INVALID_REORDER", "Unknown section in reorder request")
		}
		section.SetSortOrder(position)
		ordered = append(ordered, section)
		delete(byID, id)
	}

	return s.sectionRepo.SaveBatch(ctx, ordered)
}

// Delete removes a section
func (s *SectionService) Delete(ctx context.Context, storeID, sectionID uuid.UUID) error {
	if _, err := s.sectionRepo.FindByIDForStore(ctx, storeID, sectionID); err != nil {
		return err
	}
	return s.sectionRepo.DeleteForStore(ctx, storeID, sectionID)
}
