package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RequestType identifies the kind of time off being requested.
type RequestType string

const (
	RequestTypeVacation RequestType = "Vacation"
	RequestTypeSick     RequestType = "Sick"
	RequestTypePersonal RequestType = "Personal"
	RequestTypeHoliday  RequestType = "Holiday"
)

// RequestStatus identifies where a time-off request is in its approval workflow.
type RequestStatus string

const (
	StatusApproved RequestStatus = "Approved"
	StatusPending  RequestStatus = "Pending"
	StatusDenied   RequestStatus = "Denied"
)

// Category is the topical classification of a query. It drives both which
// structured data the retriever fetches and which response template renders
// the composed context.
type Category int

const (
	// CategoryGeneral is the default when no classification rule matches.
	CategoryGeneral Category = iota
	CategoryBalance
	CategoryPolicy
	CategoryProcess
	CategoryHoliday
	CategoryStatistics
)

// String returns the category name used in logs and template selection.
func (c Category) String() string {
	switch c {
	case CategoryBalance:
		return "balance"
	case CategoryPolicy:
		return "policy"
	case CategoryProcess:
		return "process"
	case CategoryHoliday:
		return "holiday"
	case CategoryStatistics:
		return "statistics"
	default:
		return "general"
	}
}

// Employee represents a single employee record.
// Records are loaded once at startup and never mutated afterwards.
type Employee struct {
	ID               string
	Name             string
	Department       string
	HireDate         time.Time
	EmploymentStatus string
}

// LeaveBalance holds the remaining leave day counts for one employee.
// Exactly one balance row per employee is expected; balances are
// non-negative decimal day counts.
type LeaveBalance struct {
	EmployeeID      string
	PTOBalance      float64
	SickBalance     float64
	PersonalBalance float64
	LastUpdated     time.Time
}

// TimeOffRequest represents a submitted time-off request.
type TimeOffRequest struct {
	RequestID     string
	EmployeeID    string
	Type          RequestType
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested float64
	Status        RequestStatus
	SubmittedDate time.Time
	ApprovedBy    string // empty until approved
	Comments      string
}

// Holiday represents a single entry in the company holiday calendar.
type Holiday struct {
	Name             string
	Date             time.Time
	IsCompanyHoliday bool
}

// DocumentChunk is a bounded slice of a source policy document, sized by the
// ingestion splitter. It may be enriched with an embedding vector before
// being stored in the document index.
type DocumentChunk struct {
	Id         ID
	Ord        uint64 // insertion order within the index (populated by storage)
	SourceFile string
	Seq        int // position of the chunk within its source file
	FileType   string
	Content    string
	Vector     []float32 // embedding vector (populated by the ingestion pipeline)
}

// Ref returns a string representation of the chunk as "source#seq".
// This is used for generating deterministic IDs.
func (c *DocumentChunk) Ref() string {
	return c.SourceFile + "#" + strconv.Itoa(c.Seq)
}

// ChunkMatch represents a document chunk match from vector similarity search.
type ChunkMatch struct {
	Chunk *DocumentChunk
	Score float32
}

// LeaveStatistics holds aggregate figures over the whole dataset.
type LeaveStatistics struct {
	TotalEmployees    int
	AveragePTOBalance float64
	TotalPTODays      float64
	PendingRequests   int
	ApprovedRequests  int
	TotalRequests     int
	// MostRequestedType is the mode of request types over all requests.
	// Empty when the request table is empty.
	MostRequestedType RequestType
}

// PolicySummary is a lighter-weight dataset view attached to policy queries.
type PolicySummary struct {
	TotalEmployees int
	AveragePTO     float64
	TotalRequests  int
}

// EmployeeSummary joins an employee row with its leave balance and recent
// request history.
type EmployeeSummary struct {
	Employee         Employee
	Balance          *LeaveBalance // nil when the employee has no balance row
	TotalRequests    int
	ApprovedRequests int
	PendingRequests  int
	RecentRequests   []TimeOffRequest // up to 5, table order
}

// RetrievedData carries the structured data selected for one query.
// It is a closed set of category payloads rather than an open map so the
// template renderer can dispatch exhaustively. Multiple fields may be
// populated for a single query; nil fields mean the category did not apply.
type RetrievedData struct {
	LeaveStatistics *LeaveStatistics
	EmployeeSummary *EmployeeSummary
	// UnknownEmployeeID is set when the query named an employee id that does
	// not exist in the dataset.
	UnknownEmployeeID string
	Holidays          []Holiday
	RecentRequests    []TimeOffRequest
	PolicySummary     *PolicySummary
	// Err carries a non-fatal retrieval failure. The pipeline never aborts a
	// query; failures are surfaced here instead.
	Err string
}

// RetrievalResult bundles everything retrieved for one query: ranked document
// chunks plus the structured data payloads. It lives for a single query and
// holds copies, never references into the owning stores.
type RetrievalResult struct {
	Query     string
	Category  Category
	Documents []DocumentChunk
	Data      RetrievedData
}
