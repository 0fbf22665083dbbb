package plan

import (
	"fmt"
	"os"

	"github.com/example/algotrack/pkg/models"
	"gopkg.in/yaml.v3"
)

// Fixed taxonomy of the study program
const (
	PhaseCount = 7
	TotalWeeks = 48
)

// WeekDef declares one week of the program
type WeekDef struct {
	Title          string   `yaml:"title"`
	StudyGoals     []string `yaml:"study"`
	Implementation []string `yaml:"implementation"`
}

// PhaseDef declares one phase and its weeks
type PhaseDef struct {
	Name  string    `yaml:"name"`
	Weeks []WeekDef `yaml:"weeks"`
}

// Program is the full declaration of the study plan. Week numbers are
// assigned sequentially across phases, so phase ranges are contiguous and
// non-overlapping by construction.
type Program struct {
	Name   string     `yaml:"name"`
	Phases []PhaseDef `yaml:"phases"`
}

// Load reads a program definition from a YAML file
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %v", err)
	}
	var program Program
	if err := yaml.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("failed to parse program file: %v", err)
	}
	if err := program.Validate(); err != nil {
		return nil, err
	}
	return &program, nil
}

// Validate checks the program against the fixed 7-phase/48-week taxonomy
func (p *Program) Validate() error {
	if len(p.Phases) != PhaseCount {
		return fmt.Errorf("program must have %d phases, got %d", PhaseCount, len(p.Phases))
	}
	totalWeeks := 0
	for i, phase := range p.Phases {
		if phase.Name == "" {
			return fmt.Errorf("phase %d has no name", i+1)
		}
		if len(phase.Weeks) == 0 {
			return fmt.Errorf("phase %q has no weeks", phase.Name)
		}
		for j, week := range phase.Weeks {
			if week.Title == "" {
				return fmt.Errorf("phase %q week %d has no title", phase.Name, j+1)
			}
			if len(week.StudyGoals)+len(week.Implementation) == 0 {
				return fmt.Errorf("phase %q week %d has no goals", phase.Name, j+1)
			}
		}
		totalWeeks += len(phase.Weeks)
	}
	if totalWeeks != TotalWeeks {
		return fmt.Errorf("program must have %d weeks, got %d", TotalWeeks, totalWeeks)
	}
	return nil
}

// Build materializes the program declaration into phase and week models.
// All checklist items start unchecked.
func (p *Program) Build() ([]models.Phase, []models.Week) {
	var phases []models.Phase
	var weeks []models.Week

	weekNum := 0
	for i, phaseDef := range p.Phases {
		phase := models.Phase{
			ID:        i + 1,
			Name:      phaseDef.Name,
			FirstWeek: weekNum + 1,
		}
		for _, weekDef := range phaseDef.Weeks {
			weekNum++
			week := models.Week{
				ID:      weekNum,
				PhaseID: phase.ID,
				Title:   weekDef.Title,
			}
			pos := 0
			for _, label := range weekDef.StudyGoals {
				week.Items = append(week.Items, models.ChecklistItem{
					WeekID:   weekNum,
					Section:  models.SectionStudy,
					Label:    label,
					Position: pos,
				})
				pos++
			}
			for _, label := range weekDef.Implementation {
				week.Items = append(week.Items, models.ChecklistItem{
					WeekID:   weekNum,
					Section:  models.SectionImplementation,
					Label:    label,
					Position: pos,
				})
				pos++
			}
			weeks = append(weeks, week)
		}
		phase.LastWeek = weekNum
		phases = append(phases, phase)
	}
	return phases, weeks
}
