package agent

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/rishabhvyas17/TapOnce-sub001/internal/domain"
	agentdto "github.com/rishabhvyas17/TapOnce-sub001/internal/usecase/dto/agent"
)

// maxHierarchyDepth bounds the upward walk during cycle validation.
const maxHierarchyDepth = 32

const referralCodeLength = 8

type AgentUsecase interface {
	CreateAgent(input *agentdto.CreateAgentInput) (*domain.Agent, error)
	GetAgentByID(agentID string) (*domain.Agent, error)
	GetAgentByReferralCode(code string) (*domain.Agent, error)
	// ResolveParent returns the agent's recruiter, or nil when the
	// agent is a root of the forest.
	ResolveParent(agentID string) (*domain.Agent, error)
	AssignParent(agentID, parentAgentID string) error
	SetAgentStatus(agentID string, status domain.AgentStatus) error
}

type DefaultAgentUsecase struct {
	agentRepo domain.AgentRepository
}

func NewDefaultAgentUsecase(agentRepo domain.AgentRepository) *DefaultAgentUsecase {
	return &DefaultAgentUsecase{agentRepo: agentRepo}
}

func (uc *DefaultAgentUsecase) CreateAgent(input *agentdto.CreateAgentInput) (*domain.Agent, error) {
	if input.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.Email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if input.BaseCommission < 0 {
		return nil, &domain.ValidationError{Field: "base_commission", Reason: "must not be negative"}
	}

	if input.ParentAgentID != "" {
		// The new agent extends the parent's chain by one, so the same
		// depth bound as reparenting applies.
		if err := uc.validateParentChain("", input.ParentAgentID); err != nil {
			return nil, err
		}
	}

	codeGenerator, err := nanoid.Standard(referralCodeLength)
	if err != nil {
		return nil, err
	}

	agent := &domain.Agent{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		ReferralCode:   codeGenerator(),
		ParentAgentID:  input.ParentAgentID,
		BaseCommission: input.BaseCommission,
		Status:         domain.AgentActive,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := uc.agentRepo.CreateAgent(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (uc *DefaultAgentUsecase) GetAgentByID(agentID string) (*domain.Agent, error) {
	return uc.agentRepo.GetAgentByID(agentID)
}

func (uc *DefaultAgentUsecase) GetAgentByReferralCode(code string) (*domain.Agent, error) {
	return uc.agentRepo.GetAgentByReferralCode(code)
}

func (uc *DefaultAgentUsecase) ResolveParent(agentID string) (*domain.Agent, error) {
	agent, err := uc.agentRepo.GetAgentByID(agentID)
	if err != nil {
		return nil, err
	}
	if agent.ParentAgentID == "" {
		return nil, nil
	}
	return uc.agentRepo.GetAgentByID(agent.ParentAgentID)
}

// AssignParent re-points an agent at a new recruiter. The hierarchy
// must stay a forest: walking up from the new parent must never reach
// the agent itself, and the chain must terminate within
// maxHierarchyDepth.
func (uc *DefaultAgentUsecase) AssignParent(agentID, parentAgentID string) error {
	if agentID == parentAgentID {
		return &domain.ValidationError{Field: "parent_agent_id", Reason: "agent cannot be its own parent"}
	}

	if err := uc.validateParentChain(agentID, parentAgentID); err != nil {
		return err
	}

	return uc.agentRepo.AssignParent(agentID, parentAgentID)
}

// validateParentChain walks up from parentAgentID, rejecting a chain
// deeper than maxHierarchyDepth and, when agentID is set, a path back
// to the agent itself.
func (uc *DefaultAgentUsecase) validateParentChain(agentID, parentAgentID string) error {
	current := parentAgentID
	for depth := 0; current != ""; depth++ {
		if depth >= maxHierarchyDepth {
			return &domain.ValidationError{Field: "parent_agent_id", Reason: "hierarchy too deep"}
		}
		ancestor, err := uc.agentRepo.GetAgentByID(current)
		if err != nil {
			return fmt.Errorf("walking hierarchy: %w", err)
		}
		if agentID != "" && ancestor.ID == agentID {
			return &domain.ValidationError{Field: "parent_agent_id", Reason: "assignment would create a cycle"}
		}
		current = ancestor.ParentAgentID
	}
	return nil
}

func (uc *DefaultAgentUsecase) SetAgentStatus(agentID string, status domain.AgentStatus) error {
	if status != domain.AgentActive && status != domain.AgentInactive {
		return &domain.ValidationError{Field: "status", Reason: "unknown agent status"}
	}
	return uc.agentRepo.UpdateAgentStatus(agentID, status)
}
