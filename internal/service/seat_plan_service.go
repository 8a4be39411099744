package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Justcode790/UniSeat-backend/internal/events"
	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/repository"
	"github.com/Justcode790/UniSeat-backend/internal/seating"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
	"github.com/Justcode790/UniSeat-backend/pkg/export"
)

// Export formats accepted by SeatPlanService.Export.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type seatPlanRepository interface {
	FindByExamID(ctx context.Context, examID string) (*models.SeatPlan, error)
	ExistsForExam(ctx context.Context, examID string) (bool, error)
	Create(ctx context.Context, plan *models.SeatPlan, assignments []models.SeatAssignment) error
	ListAssignments(ctx context.Context, planID string) ([]models.SeatAssignmentDetail, error)
	DeleteByExamID(ctx context.Context, examID string) error
}

type examFinder interface {
	FindByID(ctx context.Context, id string) (*models.Exam, error)
}

type rosterRepository interface {
	ListForExam(ctx context.Context, branches []string, year int) ([]models.Student, error)
}

type availableClassroomRepository interface {
	ListAvailable(ctx context.Context) ([]models.ClassroomDetail, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// GeneratedSeatPlan is the response of a generation run.
type GeneratedSeatPlan struct {
	Plan  *models.SeatPlanDetail
	Stats models.SeatPlanStats
}

// ExportFile is a rendered seat plan download.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SeatPlanDeps groups the collaborators of SeatPlanService.
type SeatPlanDeps struct {
	Plans      seatPlanRepository
	Exams      examFinder
	Students   rosterRepository
	Classrooms availableClassroomRepository
	Generator  *seating.Generator
	Cache      *CacheService
	Metrics    *MetricsService
	Events     events.Publisher
	CSV        datasetRenderer
	PDF        datasetRenderer
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// SeatPlanService generates, reads, exports and deletes exam seat plans.
type SeatPlanService struct {
	plans      seatPlanRepository
	exams      examFinder
	students   rosterRepository
	classrooms availableClassroomRepository
	generator  *seating.Generator
	cache      *CacheService
	metrics    *MetricsService
	events     events.Publisher
	csv        datasetRenderer
	pdf        datasetRenderer
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewSeatPlanService constructs SeatPlanService.
func NewSeatPlanService(deps SeatPlanDeps) *SeatPlanService {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Generator == nil {
		deps.Generator = seating.NewGenerator(deps.Logger)
	}
	if deps.Events == nil {
		deps.Events = events.NopPublisher{}
	}
	if deps.CSV == nil {
		deps.CSV = export.NewCSVExporter()
	}
	if deps.PDF == nil {
		deps.PDF = export.NewPDFExporter()
	}
	return &SeatPlanService{
		plans:      deps.Plans,
		exams:      deps.Exams,
		students:   deps.Students,
		classrooms: deps.Classrooms,
		generator:  deps.Generator,
		cache:      deps.Cache,
		metrics:    deps.Metrics,
		events:     deps.Events,
		csv:        deps.CSV,
		pdf:        deps.PDF,
		cacheTTL:   deps.CacheTTL,
		logger:     deps.Logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Generate builds and persists the seat plan for an exam. A roster larger
// than the available capacity is not an error: the overflow is reported as
// unassigned.
func (s *SeatPlanService) Generate(ctx context.Context, examID string) (*GeneratedSeatPlan, error) {
	start := time.Now()
	log := s.logger.With(zap.String("exam_id", examID))

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, sql.ErrNoRows) {
			outcome = OutcomeRejected
		}
		s.metrics.ObserveSeatPlanFailure(outcome)
		return nil, mapRepoError(err, "exam", "load")
	}

	exists, err := s.plans.ExistsForExam(ctx, examID)
	if err != nil {
		s.metrics.ObserveSeatPlanFailure(OutcomeError)
		return nil, mapRepoError(err, "seat plan", "check")
	}
	if exists {
		s.metrics.ObserveSeatPlanFailure(OutcomeConflict)
		return nil, appErrors.Clone(appErrors.ErrConflict, "seat plan already exists for this exam")
	}

	roster, err := s.students.ListForExam(ctx, exam.Branches(), exam.Year)
	if err != nil {
		s.metrics.ObserveSeatPlanFailure(OutcomeError)
		return nil, mapRepoError(err, "student", "list")
	}
	if len(roster) == 0 {
		s.metrics.ObserveSeatPlanFailure(OutcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no students found for this exam")
	}

	rooms, err := s.classrooms.ListAvailable(ctx)
	if err != nil {
		s.metrics.ObserveSeatPlanFailure(OutcomeError)
		return nil, mapRepoError(err, "classroom", "list")
	}
	if len(rooms) == 0 {
		s.metrics.ObserveSeatPlanFailure(OutcomeRejected)
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no available classrooms")
	}

	sources := toSeatSources(rooms)
	seating.SortClassrooms(sources)
	result := s.generator.Generate(toSeatingExam(exam), toSeatingStudents(roster), sources)

	plan := &models.SeatPlan{ExamID: exam.ID, GeneratedAt: s.now()}
	assignments := toSeatAssignments(result.Assignments)
	if err := s.plans.Create(ctx, plan, assignments); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.ObserveSeatPlanFailure(OutcomeConflict)
			return nil, appErrors.Clone(appErrors.ErrConflict, "seat plan already exists for this exam")
		}
		s.metrics.ObserveSeatPlanFailure(OutcomeError)
		return nil, mapRepoError(err, "seat plan", "save")
	}

	stats := models.SeatPlanStats{
		Assigned:           len(result.Assignments),
		Students:           result.Students,
		Capacity:           result.Capacity,
		Unassigned:         result.Unassigned(),
		Swaps:              result.Swaps,
		ResidualCollisions: result.ResidualCollisions,
	}
	s.metrics.ObserveSeatPlanGenerated(stats, time.Since(start))
	if stats.Unassigned > 0 {
		log.Warn("seat plan capacity shortfall",
			zap.Int("students", stats.Students),
			zap.Int("capacity", stats.Capacity),
			zap.Int("unassigned", stats.Unassigned),
		)
	}
	log.Info("seat plan generated",
		zap.String("seat_plan_id", plan.ID),
		zap.Int("assigned", stats.Assigned),
		zap.Int("swaps", stats.Swaps),
		zap.Int("residual_collisions", stats.ResidualCollisions),
		zap.Duration("duration", time.Since(start)),
	)

	_ = s.cache.Invalidate(ctx, SeatPlanCacheKey(examID), SeatPlanLayoutCacheKey(examID))
	s.events.SeatPlanGenerated(ctx, events.SeatPlanGenerated{
		ExamID:      exam.ID,
		SeatPlanID:  plan.ID,
		Assigned:    stats.Assigned,
		Students:    stats.Students,
		GeneratedAt: plan.GeneratedAt,
	})

	detail, err := s.load(ctx, exam, plan)
	if err != nil {
		return nil, err
	}
	return &GeneratedSeatPlan{Plan: detail, Stats: stats}, nil
}

// Get returns the populated seat plan for an exam. The bool reports a cache hit.
func (s *SeatPlanService) Get(ctx context.Context, examID string) (*models.SeatPlanDetail, bool, error) {
	var cached models.SeatPlanDetail
	if hit, _ := s.cache.Get(ctx, SeatPlanCacheKey(examID), &cached); hit {
		return &cached, true, nil
	}

	exam, err := s.exams.FindByID(ctx, examID)
	if err != nil {
		return nil, false, mapRepoError(err, "exam", "load")
	}
	plan, err := s.plans.FindByExamID(ctx, examID)
	if err != nil {
		return nil, false, mapRepoError(err, "seat plan", "load")
	}
	detail, err := s.load(ctx, exam, plan)
	if err != nil {
		return nil, false, err
	}
	_ = s.cache.Set(ctx, SeatPlanCacheKey(examID), detail, s.cacheTTL)
	return detail, false, nil
}

// Layout returns the plan as a seat grid per classroom, in seat filling order.
func (s *SeatPlanService) Layout(ctx context.Context, examID string) (*models.SeatLayout, bool, error) {
	var cached models.SeatLayout
	if hit, _ := s.cache.Get(ctx, SeatPlanLayoutCacheKey(examID), &cached); hit {
		return &cached, true, nil
	}

	detail, _, err := s.Get(ctx, examID)
	if err != nil {
		return nil, false, err
	}
	layout := BuildLayout(detail)
	_ = s.cache.Set(ctx, SeatPlanLayoutCacheKey(examID), layout, s.cacheTTL)
	return layout, false, nil
}

// Export renders the seat plan as CSV or PDF.
func (s *SeatPlanService) Export(ctx context.Context, examID, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	detail, _, err := s.Get(ctx, examID)
	if err != nil {
		return nil, err
	}
	dataset := seatPlanDataset(detail)

	file := &ExportFile{Filename: exportFilename(detail.Exam, format)}
	switch format {
	case ExportFormatPDF:
		file.ContentType = "application/pdf"
		file.Content, err = s.pdf.Render(dataset)
	default:
		file.ContentType = "text/csv"
		file.Content, err = s.csv.Render(dataset)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render seat plan")
	}
	return file, nil
}

// Delete removes the exam's seat plan so it can be regenerated.
func (s *SeatPlanService) Delete(ctx context.Context, examID string) error {
	if err := s.plans.DeleteByExamID(ctx, examID); err != nil {
		return mapRepoError(err, "seat plan", "delete")
	}
	_ = s.cache.Invalidate(ctx, SeatPlanCacheKey(examID), SeatPlanLayoutCacheKey(examID))
	s.events.SeatPlanDeleted(ctx, events.SeatPlanDeleted{ExamID: examID})
	s.logger.Info("seat plan deleted", zap.String("exam_id", examID))
	return nil
}

func (s *SeatPlanService) load(ctx context.Context, exam *models.Exam, plan *models.SeatPlan) (*models.SeatPlanDetail, error) {
	assignments, err := s.plans.ListAssignments(ctx, plan.ID)
	if err != nil {
		return nil, mapRepoError(err, "seat plan", "load")
	}
	if assignments == nil {
		assignments = []models.SeatAssignmentDetail{}
	}
	return &models.SeatPlanDetail{SeatPlan: *plan, Exam: *exam, Assignments: assignments}, nil
}

// BuildLayout arranges a plan's assignments into per-classroom seat grids.
// Classrooms appear in the order their first seat was filled; empty seats
// are included so every grid is rectangular up to the classroom capacity.
func BuildLayout(detail *models.SeatPlanDetail) *models.SeatLayout {
	layout := &models.SeatLayout{ExamID: detail.ExamID, SeatPlanID: detail.ID, Classrooms: []models.ClassroomLayout{}}
	index := make(map[string]int)
	seats := make(map[string][]models.SeatAssignmentDetail)

	for _, a := range detail.Assignments {
		if _, ok := index[a.ClassroomID]; !ok {
			index[a.ClassroomID] = len(layout.Classrooms)
			layout.Classrooms = append(layout.Classrooms, models.ClassroomLayout{
				ClassroomID:   a.ClassroomID,
				ClassroomName: a.ClassroomName,
				BlockName:     a.BlockName,
				FloorNumber:   a.FloorNumber,
				Capacity:      a.ClassroomCapacity,
			})
		}
		seats[a.ClassroomID] = append(seats[a.ClassroomID], a)
	}

	for i := range layout.Classrooms {
		room := &layout.Classrooms[i]
		occupants := seats[room.ClassroomID]

		cols := seating.ColumnsPerRow(room.Capacity)
		rows := seating.RowCount(room.Capacity)
		seatCount := room.Capacity
		for _, a := range occupants {
			if a.Col > cols {
				cols = a.Col
			}
			if a.Row > rows {
				rows = a.Row
			}
			if a.SeatNumber > seatCount {
				seatCount = a.SeatNumber
			}
		}
		room.Columns = cols

		grid := make([][]models.LayoutSeat, rows)
		for r := 0; r < rows; r++ {
			grid[r] = make([]models.LayoutSeat, 0, cols)
			for c := 0; c < cols; c++ {
				seat := r*cols + c + 1
				if seat > seatCount {
					break
				}
				grid[r] = append(grid[r], models.LayoutSeat{SeatNumber: seat, Row: r + 1, Col: c + 1})
			}
		}
		for _, a := range occupants {
			row := grid[a.Row-1]
			for j := range row {
				if row[j].Col == a.Col {
					row[j].Student = &models.LayoutPerson{ID: a.StudentID, Name: a.StudentName, RegNumber: a.RegNumber, Branch: a.Branch}
					row[j].SeatNumber = a.SeatNumber
				}
			}
		}
		room.Rows = grid
	}
	return layout
}

func seatPlanDataset(detail *models.SeatPlanDetail) export.Dataset {
	dataset := export.Dataset{
		Title: fmt.Sprintf("Seat Plan: %s", detail.Exam.Name),
		Subtitle: []string{
			fmt.Sprintf("%s | %s | Year %d | %s", detail.Exam.Subject, detail.Exam.Branch, detail.Exam.Year, detail.Exam.Date.Format(examDateLayout)),
			fmt.Sprintf("%d students seated", len(detail.Assignments)),
		},
		Headers: []string{"Block", "Floor", "Classroom", "Seat", "Row", "Column", "Reg Number", "Name", "Branch", "Section"},
		Widths:  []float64{2, 1, 2, 1, 1, 1, 2, 4, 1.5, 1.5},
	}

	byRoom := make(map[string]int)
	for _, a := range detail.Assignments {
		idx, ok := byRoom[a.ClassroomID]
		if !ok {
			idx = len(dataset.Sections)
			byRoom[a.ClassroomID] = idx
			dataset.Sections = append(dataset.Sections, export.Section{
				Heading: fmt.Sprintf("%s / Floor %d / %s", a.BlockName, a.FloorNumber, a.ClassroomName),
			})
		}
		dataset.Sections[idx].Rows = append(dataset.Sections[idx].Rows, []string{
			a.BlockName,
			strconv.Itoa(a.FloorNumber),
			a.ClassroomName,
			strconv.Itoa(a.SeatNumber),
			strconv.Itoa(a.Row),
			strconv.Itoa(a.Col),
			a.RegNumber,
			a.StudentName,
			a.Branch,
			a.Section,
		})
	}
	for i := range dataset.Sections {
		rows := dataset.Sections[i].Rows
		sort.SliceStable(rows, func(x, y int) bool {
			a, _ := strconv.Atoi(rows[x][3])
			b, _ := strconv.Atoi(rows[y][3])
			return a < b
		})
	}
	return dataset
}

func exportFilename(exam models.Exam, format string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, exam.Name)
	if name == "" {
		name = exam.ID
	}
	return fmt.Sprintf("seatplan_%s_%s.%s", name, exam.Date.Format("20060102"), format)
}

func toSeatingExam(exam *models.Exam) seating.Exam {
	return seating.Exam{
		ID:                      exam.ID,
		Name:                    exam.Name,
		Branch:                  exam.Branch,
		Year:                    exam.Year,
		Date:                    exam.Date,
		AvoidAdjacentSameBranch: exam.AvoidAdjacentSameBranch,
	}
}

func toSeatingStudents(students []models.Student) []seating.Student {
	out := make([]seating.Student, 0, len(students))
	for _, st := range students {
		out = append(out, seating.Student{
			ID:        st.ID,
			Name:      st.Name,
			RegNumber: st.RegNumber,
			Branch:    st.Branch,
			Year:      st.Year,
			Section:   st.Section,
		})
	}
	return out
}

func toSeatSources(rooms []models.ClassroomDetail) []seating.ClassroomSeatSource {
	out := make([]seating.ClassroomSeatSource, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, seating.ClassroomSeatSource{
			ClassroomID:   r.ID,
			ClassroomName: r.Name,
			Capacity:      r.Capacity,
			FloorID:       r.FloorID,
			FloorNumber:   r.FloorNumber,
			BlockID:       r.BlockID,
			BlockName:     r.BlockName,
		})
	}
	return out
}

func toSeatAssignments(assignments []seating.Assignment) []models.SeatAssignment {
	out := make([]models.SeatAssignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, models.SeatAssignment{
			StudentID:   a.StudentID,
			BlockID:     a.BlockID,
			FloorID:     a.FloorID,
			ClassroomID: a.ClassroomID,
			SeatNumber:  a.SeatNumber,
			Row:         a.Row,
			Col:         a.Col,
		})
	}
	return out
}
