// Package fixtures provides an in-memory HRM API for tests: the same
// envelope, routes, and semantics the production backend speaks, plus
// failure injection for exercising rollback paths.
package fixtures

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
)

type userAccount struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`

	password string
}

type employeeRow struct {
	ID           int64  `json:"id"`
	Code         string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	DepartmentID *int64 `json:"department_id,omitempty"`
	Department   string `json:"department,omitempty"`
	PositionID   *int64 `json:"position_id,omitempty"`
	Position     string `json:"position,omitempty"`
	Status       string `json:"status"`
	Phone        string `json:"phone,omitempty"`
	JoinDate     string `json:"date_of_joining"`
}

type attendanceRow struct {
	ID           *int64       `json:"id"`
	EmployeeID   int64        `json:"employee_id"`
	Date         string       `json:"date"`
	Status       string       `json:"status"`
	CheckInTime  *string      `json:"check_in_time"`
	CheckOutTime *string      `json:"check_out_time"`
	Employee     *employeeRow `json:"employee,omitempty"`
}

type department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type position struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// Server is an in-memory HRM API.
type Server struct {
	mu sync.Mutex

	nextUserID       int64
	nextEmployeeID   int64
	nextAttendanceID int64
	nextLookupID     int64

	users       map[string]*userAccount // keyed by email
	tokens      map[string]string       // token -> email
	employees   []*employeeRow
	departments []department
	positions   []position

	attendance    map[int64]*attendanceRow
	attendanceKey map[string]int64 // "employeeID|date" -> record id

	failWrites int
	writeHook  func()

	handler http.Handler
}

func New() *Server {
	s := &Server{
		users:         make(map[string]*userAccount),
		tokens:        make(map[string]string),
		attendance:    make(map[int64]*attendanceRow),
		attendanceKey: make(map[string]int64),
	}

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Post("/register", s.handleRegister)
			r.Get("/me", s.handleMe)
			r.Post("/logout", s.handleLogout)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.handleListEmployees)
			r.Post("/", s.handleCreateEmployee)
			r.Get("/{id}", s.handleGetEmployee)
			r.Put("/{id}", s.handleUpdateEmployee)
			r.Delete("/{id}", s.handleDeleteEmployee)
		})

		r.Get("/departments", s.handleDepartments)
		r.Get("/positions", s.handlePositions)

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", s.handleListAttendance)
			r.Post("/", s.handleCreateAttendance)
			r.Put("/{id}", s.handleUpdateAttendance)
			r.Get("/employee/{id}", s.handleEmployeeHistory)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", s.handleStats)
			r.Get("/weekly-attendance", s.handleWeeklyAttendance)
		})
	})

	s.handler = r
	return s
}

// Handler returns the API as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ----------------------------------------------------------------------
// Seeding & failure injection

func (s *Server) SeedUser(email, password, role string) *userAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUserID++
	u := &userAccount{
		ID:       s.nextUserID,
		Email:    email,
		Username: strings.SplitN(email, "@", 2)[0],
		Role:     role,
		IsActive: true,
		password: password,
	}
	s.users[email] = u
	return u
}

func (s *Server) SeedDepartment(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLookupID++
	s.departments = append(s.departments, department{ID: s.nextLookupID, Name: name})
	return s.nextLookupID
}

func (s *Server) SeedPosition(title string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLookupID++
	s.positions = append(s.positions, position{ID: s.nextLookupID, Title: title})
	return s.nextLookupID
}

func (s *Server) SeedEmployee(fullName, email, dept string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextEmployeeID++
	s.employees = append(s.employees, &employeeRow{
		ID:         s.nextEmployeeID,
		Code:       "EMP-" + strconv.FormatInt(1000+s.nextEmployeeID, 10),
		FullName:   fullName,
		Email:      email,
		Department: dept,
		Status:     "active",
		JoinDate:   "2024-01-15",
	})
	return s.nextEmployeeID
}

// SeedAttendance stores a record; times are HH:MM and are served back
// with seconds attached, the way the production backend serializes them.
func (s *Server) SeedAttendance(employeeID int64, date, status, checkIn, checkOut string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAttendanceID++
	id := s.nextAttendanceID
	row := &attendanceRow{
		ID:         &id,
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	}
	if checkIn != "" {
		row.CheckInTime = fullTime(checkIn)
	}
	if checkOut != "" {
		row.CheckOutTime = fullTime(checkOut)
	}
	s.attendance[id] = row
	s.attendanceKey[attKey(employeeID, date)] = id
	return id
}

// FailNextWrites makes the next n attendance writes fail with HTTP 500.
func (s *Server) FailNextWrites(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrites = n
}

// SetWriteHook installs a hook that runs before each attendance write
// is applied. Tests use it to interleave other operations with an
// in-flight write; it may be swapped while requests are in flight.
func (s *Server) SetWriteHook(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeHook = hook
}

func (s *Server) runWriteHook() {
	s.mu.Lock()
	hook := s.writeHook
	s.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// AttendanceRecord returns the stored record by id, for assertions.
func (s *Server) AttendanceRecord(id int64) (attendanceRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.attendance[id]
	if !ok {
		return attendanceRow{}, false
	}
	return *row, true
}

func attKey(employeeID int64, date string) string {
	return strconv.FormatInt(employeeID, 10) + "|" + date
}

func fullTime(hhmm string) *string {
	v := hhmm + ":00"
	return &v
}

// ----------------------------------------------------------------------
// Envelope writers

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errDetail  `json:"error,omitempty"`
	Meta    *meta       `json:"meta,omitempty"`
}

type errDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type meta struct {
	Page       int   `json:"page,omitempty"`
	Limit      int   `json:"limit,omitempty"`
	TotalItems int64 `json:"total_items,omitempty"`
	TotalPages int   `json:"total_pages,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func ok(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func okWithMeta(w http.ResponseWriter, data interface{}, m *meta) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Meta: m})
}

func created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: data})
}

func fail(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, envelope{Success: false, Error: &errDetail{Code: code, Message: message}})
}

// ----------------------------------------------------------------------
// Auth handlers

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, okUser := s.users[req.Email]
	if !okUser || u.password != req.Password {
		fail(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid email or password")
		return
	}

	token := "tok-" + uuid.NewString()
	s.tokens[token] = u.Email
	ok(w, map[string]interface{}{
		"access_token":  token,
		"refresh_token": "ref-" + uuid.NewString(),
		"token_type":    "bearer",
		"user":          u,
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		fail(w, http.StatusConflict, "EMAIL_EXISTS", "email already registered")
		return
	}
	s.nextUserID++
	u := &userAccount{
		ID:       s.nextUserID,
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Role:     "user",
		IsActive: true,
		password: req.Password,
	}
	s.users[req.Email] = u
	created(w, u)
}

func (s *Server) authedUser(r *http.Request) *userAccount {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, okTok := s.tokens[token]
	if !okTok {
		return nil
	}
	return s.users[email]
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u := s.authedUser(r)
	if u == nil {
		fail(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid token")
		return
	}
	ok(w, u)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	ok(w, nil)
}

// ----------------------------------------------------------------------
// Employee handlers

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 10
	}
	search := strings.ToLower(q.Get("search"))
	dept := q.Get("department")
	status := q.Get("status")

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*employeeRow
	for _, e := range s.employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.FullName), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) {
			continue
		}
		if dept != "" && e.Department != dept {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	pageRows := make([]employeeRow, 0, end-start)
	for _, e := range matched[start:end] {
		pageRows = append(pageRows, *e)
	}
	okWithMeta(w, pageRows, &meta{Page: page, Limit: limit, TotalItems: total, TotalPages: totalPages})
}

func (s *Server) findEmployee(id int64) (int, *employeeRow) {
	for i, e := range s.employees {
		if e.ID == id {
			return i, e
		}
	}
	return -1, nil
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, e := s.findEmployee(id)
	if !okID || e == nil {
		fail(w, http.StatusNotFound, "NOT_FOUND", "employee not found")
		return
	}
	ok(w, *e)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employeeRow
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.employees {
		if e.Email == req.Email {
			fail(w, http.StatusConflict, "EMAIL_EXISTS", "email already registered")
			return
		}
	}
	s.nextEmployeeID++
	req.ID = s.nextEmployeeID
	if req.Code == "" {
		req.Code = "EMP-" + strconv.FormatInt(1000+req.ID, 10)
	}
	if req.Status == "" {
		req.Status = "active"
	}
	row := req
	s.employees = append(s.employees, &row)
	created(w, row)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r)

	var req map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, e := s.findEmployee(id)
	if !okID || e == nil {
		fail(w, http.StatusNotFound, "NOT_FOUND", "employee not found")
		return
	}

	applyString := func(key string, dst *string) {
		if raw, present := req[key]; present {
			_ = json.Unmarshal(raw, dst)
		}
	}
	applyString("full_name", &e.FullName)
	applyString("email", &e.Email)
	applyString("status", &e.Status)
	applyString("phone", &e.Phone)
	applyString("date_of_joining", &e.JoinDate)
	ok(w, *e)
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	i, e := s.findEmployee(id)
	if !okID || e == nil {
		fail(w, http.StatusNotFound, "NOT_FOUND", "employee not found")
		return
	}
	s.employees = append(s.employees[:i], s.employees[i+1:]...)
	ok(w, nil)
}

func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(w, s.departments)
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(w, s.positions)
}

// ----------------------------------------------------------------------
// Attendance handlers

// handleListAttendance merges every employee with that date's records:
// employees with no entry get an id-less placeholder, status absent.
func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "date is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]attendanceRow, 0, len(s.employees))
	for _, e := range s.employees {
		emp := *e
		if id, found := s.attendanceKey[attKey(e.ID, date)]; found {
			row := *s.attendance[id]
			row.Employee = &emp
			rows = append(rows, row)
			continue
		}
		rows = append(rows, attendanceRow{
			EmployeeID: e.ID,
			Date:       date,
			Status:     "absent",
			Employee:   &emp,
		})
	}
	ok(w, rows)
}

func (s *Server) handleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id, okID := pathID(r)
	if !okID {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid employee id")
		return
	}
	from := r.URL.Query().Get("start_date")
	to := r.URL.Query().Get("end_date")

	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []attendanceRow
	for _, row := range s.attendance {
		if row.EmployeeID != id {
			continue
		}
		if from != "" && row.Date < from {
			continue
		}
		if to != "" && row.Date > to {
			continue
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	ok(w, rows)
}

// takeWriteFailure consumes one injected failure if any are pending.
func (s *Server) takeWriteFailure() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites > 0 {
		s.failWrites--
		return true
	}
	return false
}

func (s *Server) handleCreateAttendance(w http.ResponseWriter, r *http.Request) {
	s.runWriteHook()
	if s.takeWriteFailure() {
		fail(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "injected write failure")
		return
	}

	var req struct {
		EmployeeID int64   `json:"employee_id"`
		Date       string  `json:"date"`
		Status     string  `json:"status"`
		CheckIn    *string `json:"check_in_time"`
		CheckOut   *string `json:"check_out_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.attendanceKey[attKey(req.EmployeeID, req.Date)]; exists {
		fail(w, http.StatusBadRequest, "ALREADY_LOGGED", "attendance for this date already logged")
		return
	}

	s.nextAttendanceID++
	id := s.nextAttendanceID
	row := &attendanceRow{
		ID:         &id,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	}
	if req.CheckIn != nil {
		row.CheckInTime = fullTime(*req.CheckIn)
	}
	if req.CheckOut != nil {
		row.CheckOutTime = fullTime(*req.CheckOut)
	}
	s.attendance[id] = row
	s.attendanceKey[attKey(req.EmployeeID, req.Date)] = id
	created(w, *row)
}

func (s *Server) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	s.runWriteHook()
	if s.takeWriteFailure() {
		fail(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "injected write failure")
		return
	}

	id, okID := pathID(r)

	var req struct {
		Status   *string `json:"status"`
		CheckIn  *string `json:"check_in_time"`
		CheckOut *string `json:"check_out_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	row, found := s.attendance[id]
	if !okID || !found {
		fail(w, http.StatusNotFound, "NOT_FOUND", "attendance record not found")
		return
	}

	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.CheckIn != nil {
		row.CheckInTime = fullTime(*req.CheckIn)
	}
	if req.CheckOut != nil {
		row.CheckOutTime = fullTime(*req.CheckOut)
	}
	ok(w, *row)
}

// ----------------------------------------------------------------------
// Dashboard handlers

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("date") // tests may pin "today"
	s.mu.Lock()
	defer s.mu.Unlock()

	var present, onLeave int64
	for _, row := range s.attendance {
		if today != "" && row.Date != today {
			continue
		}
		switch row.Status {
		case "present":
			present++
		case "leave":
			onLeave++
		}
	}

	stat := func(v int64, dir, trend string) map[string]interface{} {
		return map[string]interface{}{
			"value":       v,
			"trendDetail": map[string]string{"direction": dir, "value": trend},
		}
	}
	ok(w, map[string]interface{}{
		"totalEmployees": stat(int64(len(s.employees)), "up", "+2%"),
		"presentToday":   stat(present, "up", "+5%"),
		"onLeave":        stat(onLeave, "down", "-1%"),
		"openRoles":      stat(int64(len(s.positions)), "up", "+1"),
	})
}

func (s *Server) handleWeeklyAttendance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int64{}
	for _, row := range s.attendance {
		if row.Status != "present" {
			continue
		}
		if d, err := timeParseDate(row.Date); err == nil {
			counts[d]++
		}
	}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	out := make([]map[string]interface{}, 0, len(days))
	for _, day := range days {
		out = append(out, map[string]interface{}{"day": day, "value": counts[day]})
	}
	ok(w, out)
}

func timeParseDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.Format("Mon"), nil
}
