package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justcode790/UniSeat-backend/internal/events"
	"github.com/Justcode790/UniSeat-backend/internal/models"
	"github.com/Justcode790/UniSeat-backend/internal/repository"
	appErrors "github.com/Justcode790/UniSeat-backend/pkg/errors"
)

type seatPlanRepoStub struct {
	plans       map[string]*models.SeatPlan
	assignments map[string][]models.SeatAssignment
	roster      map[string]models.Student
	rooms       map[string]models.ClassroomDetail
	createErr   error
	listCalls   int
}

func newSeatPlanRepoStub() *seatPlanRepoStub {
	return &seatPlanRepoStub{
		plans:       make(map[string]*models.SeatPlan),
		assignments: make(map[string][]models.SeatAssignment),
		roster:      make(map[string]models.Student),
		rooms:       make(map[string]models.ClassroomDetail),
	}
}

func (s *seatPlanRepoStub) FindByExamID(ctx context.Context, examID string) (*models.SeatPlan, error) {
	p, ok := s.plans[examID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (s *seatPlanRepoStub) ExistsForExam(ctx context.Context, examID string) (bool, error) {
	_, ok := s.plans[examID]
	return ok, nil
}

func (s *seatPlanRepoStub) Create(ctx context.Context, plan *models.SeatPlan, assignments []models.SeatAssignment) error {
	if s.createErr != nil {
		return s.createErr
	}
	plan.ID = "plan-" + plan.ExamID
	for i := range assignments {
		assignments[i].SeatPlanID = plan.ID
		assignments[i].Position = i
	}
	s.plans[plan.ExamID] = plan
	s.assignments[plan.ID] = assignments
	return nil
}

func (s *seatPlanRepoStub) ListAssignments(ctx context.Context, planID string) ([]models.SeatAssignmentDetail, error) {
	s.listCalls++
	var out []models.SeatAssignmentDetail
	for _, a := range s.assignments[planID] {
		st := s.roster[a.StudentID]
		room := s.rooms[a.ClassroomID]
		out = append(out, models.SeatAssignmentDetail{
			SeatAssignment:    a,
			StudentName:       st.Name,
			RegNumber:         st.RegNumber,
			Branch:            st.Branch,
			Year:              st.Year,
			Section:           st.Section,
			BlockName:         room.BlockName,
			FloorNumber:       room.FloorNumber,
			ClassroomName:     room.Name,
			ClassroomCapacity: room.Capacity,
		})
	}
	return out, nil
}

func (s *seatPlanRepoStub) DeleteByExamID(ctx context.Context, examID string) error {
	p, ok := s.plans[examID]
	if !ok {
		return sql.ErrNoRows
	}
	delete(s.assignments, p.ID)
	delete(s.plans, examID)
	return nil
}

type recordingPublisher struct {
	generated []events.SeatPlanGenerated
	deleted   []events.SeatPlanDeleted
}

func (p *recordingPublisher) SeatPlanGenerated(ctx context.Context, e events.SeatPlanGenerated) {
	p.generated = append(p.generated, e)
}

func (p *recordingPublisher) SeatPlanDeleted(ctx context.Context, e events.SeatPlanDeleted) {
	p.deleted = append(p.deleted, e)
}

type seatPlanFixture struct {
	svc       *SeatPlanService
	plans     *seatPlanRepoStub
	students  *studentRepoStub
	rooms     *classroomRepoStub
	exams     *examRepoStub
	cache     *memoryCache
	metrics   *MetricsService
	publisher *recordingPublisher
}

func newSeatPlanFixture(t *testing.T) *seatPlanFixture {
	t.Helper()
	f := &seatPlanFixture{
		plans:     newSeatPlanRepoStub(),
		students:  newStudentRepoStub(),
		rooms:     &classroomRepoStub{},
		exams:     &examRepoStub{exams: map[string]*models.Exam{}},
		cache:     newMemoryCache(),
		metrics:   NewMetricsService(),
		publisher: &recordingPublisher{},
	}
	f.exams.exams["exam-1"] = &models.Exam{
		ID: "exam-1", Name: "Mid Sem", Subject: "Maths", Branch: "CSE,ECE", Year: 2,
		Date: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), AvoidAdjacentSameBranch: true,
	}
	f.svc = NewSeatPlanService(SeatPlanDeps{
		Plans:      f.plans,
		Exams:      f.exams,
		Students:   f.students,
		Classrooms: f.rooms,
		Cache:      NewCacheService(f.cache, f.metrics, time.Minute, nil, true),
		Metrics:    f.metrics,
		Events:     f.publisher,
	})
	return f
}

func (f *seatPlanFixture) addStudents(branch string, year, n int) {
	for i := 1; i <= n; i++ {
		st := models.Student{
			ID:        fmt.Sprintf("%s-%d-%02d", branch, year, i),
			Name:      fmt.Sprintf("%s student %d", branch, i),
			RegNumber: fmt.Sprintf("%s%02d", branch, i),
			Branch:    branch,
			Year:      year,
			Section:   "A",
		}
		f.students.students[st.ID] = &st
		f.plans.roster[st.ID] = st
	}
}

func (f *seatPlanFixture) addRoom(id, name, block string, floor, capacity int) {
	room := models.ClassroomDetail{
		Classroom:   models.Classroom{ID: id, FloorID: "floor-" + block, Name: name, Capacity: capacity, Status: models.ClassroomAvailable},
		FloorNumber: floor,
		BlockID:     "block-" + block,
		BlockName:   block,
	}
	f.rooms.available = append(f.rooms.available, room)
	f.plans.rooms[id] = room
}

func TestSeatPlanGenerate(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 6)
	f.addStudents("ECE", 2, 4)
	f.addStudents("CSE", 3, 5)
	f.addRoom("r2", "B101", "Science", 1, 6)
	f.addRoom("r1", "A101", "Main", 0, 6)
	f.cache.items[SeatPlanCacheKey("exam-1")] = []byte(`{"id":"stale"}`)

	out, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)

	assert.Equal(t, 10, out.Stats.Students)
	assert.Equal(t, 10, out.Stats.Assigned)
	assert.Equal(t, 12, out.Stats.Capacity)
	assert.Equal(t, 0, out.Stats.Unassigned)
	require.Len(t, out.Plan.Assignments, 10)
	assert.Equal(t, "plan-exam-1", out.Plan.ID)

	// Main sorts before Science, so its room fills first despite listing order.
	assert.Equal(t, "r1", out.Plan.Assignments[0].ClassroomID)
	assert.Equal(t, "r2", out.Plan.Assignments[6].ClassroomID)

	seen := map[string]bool{}
	for _, a := range out.Plan.Assignments {
		assert.Equal(t, 2, a.Year)
		assert.False(t, seen[a.StudentID])
		seen[a.StudentID] = true
	}

	assert.NotContains(t, f.cache.items, SeatPlanCacheKey("exam-1"))
	require.Len(t, f.publisher.generated, 1)
	assert.Equal(t, events.SeatPlanGenerated{
		ExamID: "exam-1", SeatPlanID: "plan-exam-1", Assigned: 10, Students: 10, GeneratedAt: f.plans.plans["exam-1"].GeneratedAt,
	}, f.publisher.generated[0])
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.generations.WithLabelValues(OutcomeSuccess)))
}

func TestSeatPlanGenerateReportsShortfall(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 7)
	f.addStudents("ECE", 2, 5)
	f.addRoom("r1", "A101", "Main", 0, 4)
	f.addRoom("r2", "A102", "Main", 0, 6)

	out, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.Equal(t, 10, out.Stats.Assigned)
	assert.Equal(t, 2, out.Stats.Unassigned)
	assert.Equal(t, float64(2), testutil.ToFloat64(f.metrics.unassigned))
}

func TestSeatPlanGenerateFailures(t *testing.T) {
	t.Run("exam missing", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		_, err := f.svc.Generate(context.Background(), "nope")
		assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.generations.WithLabelValues(OutcomeRejected)))
	})

	t.Run("plan exists", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		f.plans.plans["exam-1"] = &models.SeatPlan{ID: "p", ExamID: "exam-1"}
		_, err := f.svc.Generate(context.Background(), "exam-1")
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	})

	t.Run("no students", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		f.addStudents("ME", 2, 3)
		f.addRoom("r1", "A101", "Main", 0, 10)
		_, err := f.svc.Generate(context.Background(), "exam-1")
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErr.Code)
		assert.Equal(t, "no students found for this exam", appErr.Message)
	})

	t.Run("no classrooms", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		f.addStudents("CSE", 2, 3)
		_, err := f.svc.Generate(context.Background(), "exam-1")
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErr.Code)
		assert.Equal(t, "no available classrooms", appErr.Message)
	})

	t.Run("concurrent insert", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		f.addStudents("CSE", 2, 3)
		f.addRoom("r1", "A101", "Main", 0, 10)
		f.plans.createErr = repository.ErrDuplicate
		_, err := f.svc.Generate(context.Background(), "exam-1")
		assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
		assert.Empty(t, f.publisher.generated)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newSeatPlanFixture(t)
		f.addStudents("CSE", 2, 3)
		f.addRoom("r1", "A101", "Main", 0, 10)
		f.plans.createErr = errors.New("tx aborted")
		_, err := f.svc.Generate(context.Background(), "exam-1")
		assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.generations.WithLabelValues(OutcomeError)))
	})
}

func TestSeatPlanGetUsesCache(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 4)
	f.addRoom("r1", "A101", "Main", 0, 10)
	_, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)
	callsAfterGenerate := f.plans.listCalls

	first, hit, err := f.svc.Get(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.False(t, hit)
	second, hit, err := f.svc.Get(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, callsAfterGenerate+1, f.plans.listCalls)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Assignments, 4)
	assert.Equal(t, "Mid Sem", second.Exam.Name)
}

func TestSeatPlanGetMissing(t *testing.T) {
	f := newSeatPlanFixture(t)

	_, _, err := f.svc.Get(context.Background(), "exam-1")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "seat plan not found", appErr.Message)
}

func TestSeatPlanLayout(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 3)
	f.addStudents("ECE", 2, 3)
	f.addRoom("r1", "A101", "Main", 0, 4)
	f.addRoom("r2", "A102", "Main", 0, 6)
	_, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)

	layout, hit, err := f.svc.Layout(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, layout.Classrooms, 2)

	// capacity 4 -> 3 columns: a full row of 3 and a second row holding seat 4.
	first := layout.Classrooms[0]
	assert.Equal(t, "A101", first.ClassroomName)
	assert.Equal(t, 3, first.Columns)
	require.Len(t, first.Rows, 2)
	assert.Len(t, first.Rows[0], 3)
	assert.Len(t, first.Rows[1], 1)
	assert.Equal(t, 4, first.Rows[1][0].SeatNumber)

	// capacity 6 -> 4 columns; two students spill over, seats 3-6 stay empty.
	second := layout.Classrooms[1]
	assert.Equal(t, 4, second.Columns)
	require.Len(t, second.Rows, 2)
	assert.NotNil(t, second.Rows[0][0].Student)
	assert.NotNil(t, second.Rows[0][1].Student)
	assert.Nil(t, second.Rows[0][2].Student)
	assert.Len(t, second.Rows[1], 2)

	seated := 0
	for _, room := range layout.Classrooms {
		for _, row := range room.Rows {
			for _, seat := range row {
				if seat.Student != nil {
					seated++
				}
			}
		}
	}
	assert.Equal(t, 6, seated)

	_, hit, err = f.svc.Layout(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestSeatPlanExport(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 2)
	f.addRoom("r1", "A101", "Main", 0, 4)
	_, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)

	file, err := f.svc.Export(context.Background(), "exam-1", "CSV")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "seatplan_Mid_Sem_20260504.csv", file.Filename)
	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Block,Floor,Classroom,Seat,Row,Column,Reg Number,Name,Branch,Section", lines[0])
	assert.Equal(t, "Main,0,A101,1,1,1,CSE01,CSE student 1,CSE,A", lines[1])

	pdf, err := f.svc.Export(context.Background(), "exam-1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, strings.HasPrefix(string(pdf.Content), "%PDF-"))

	_, err = f.svc.Export(context.Background(), "exam-1", "xlsx")
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSeatPlanDelete(t *testing.T) {
	f := newSeatPlanFixture(t)
	f.addStudents("CSE", 2, 2)
	f.addRoom("r1", "A101", "Main", 0, 4)
	_, err := f.svc.Generate(context.Background(), "exam-1")
	require.NoError(t, err)
	_, _, err = f.svc.Get(context.Background(), "exam-1")
	require.NoError(t, err)
	require.Contains(t, f.cache.items, SeatPlanCacheKey("exam-1"))

	require.NoError(t, f.svc.Delete(context.Background(), "exam-1"))
	assert.NotContains(t, f.cache.items, SeatPlanCacheKey("exam-1"))
	assert.Equal(t, []events.SeatPlanDeleted{{ExamID: "exam-1"}}, f.publisher.deleted)

	err = f.svc.Delete(context.Background(), "exam-1")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = f.svc.Generate(context.Background(), "exam-1")
	assert.NoError(t, err, "a deleted plan can be regenerated")
}
