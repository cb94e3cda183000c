package retrieval

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/timeoff/core"
	"github.com/poiesic/timeoff/dataset"
	"github.com/poiesic/timeoff/search"
)

const recentRequestLimit = 10

// employeeIDPattern matches employee ids like "emp001" anywhere in a query.
var employeeIDPattern = regexp.MustCompile(`(?i)emp\d+`)

// Keyword sets for the independent data checks. These differ from the
// classification rules: a single query can trip several of them at once.
var (
	leaveDataKeywords   = []string{"employee", "balance", "pto", "leave"}
	holidayDataKeywords = []string{"holiday", "holidays", "christmas", "thanksgiving"}
	requestDataKeywords = []string{"request", "approval", "pending", "approved"}
	policyDataKeywords  = []string{"policy", "rules", "guidelines"}
)

// Retriever composes the retrieval context for a query: ranked document
// chunks from the index plus the structured payloads the query calls for.
type Retriever struct {
	index         *search.Index
	store         *dataset.Store
	topK          int
	minSimilarity float32
	logger        *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a retriever over the given index and dataset store.
// topK bounds the document list; minSimilarity filters weak matches.
func NewRetriever(index *search.Index, store *dataset.Store, topK int, minSimilarity float32, opts ...Option) (*Retriever, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	if topK <= 0 {
		return nil, search.ErrInvalidTopK
	}

	r := &Retriever{
		index:         index,
		store:         store,
		topK:          topK,
		minSimilarity: minSimilarity,
		logger:        slog.Default().With("component", "retrieval"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Retrieve builds the full retrieval context for a query. It never fails:
// search errors degrade to an empty document list with the failure recorded
// in Data.Err, and unknown employee ids are reported in the data rather
// than raised.
func (r *Retriever) Retrieve(ctx context.Context, query string) *core.RetrievalResult {
	result := &core.RetrievalResult{
		Query:    query,
		Category: Classify(query),
	}

	documents, err := r.index.Search(ctx, query, r.topK, r.minSimilarity)
	if err != nil {
		r.logger.Error("document search failed", "query", query, "err", err)
		result.Data.Err = err.Error()
	} else {
		result.Documents = documents
	}

	r.attachData(query, result)

	r.logger.Info("retrieved context",
		"query", query,
		"category", result.Category.String(),
		"documents", len(result.Documents))
	return result
}

// attachData populates the structured payloads. The checks are independent;
// one query may populate several.
func (r *Retriever) attachData(query string, result *core.RetrievalResult) {
	lowered := strings.ToLower(query)

	if containsAny(lowered, leaveDataKeywords) {
		stats := r.store.Statistics()
		result.Data.LeaveStatistics = &stats
	}

	if match := employeeIDPattern.FindString(query); match != "" {
		employeeID := strings.ToUpper(match)
		summary, err := r.store.EmployeeSummary(employeeID)
		switch {
		case err == nil:
			result.Data.EmployeeSummary = summary
		case errors.Is(err, dataset.ErrEmployeeNotFound):
			result.Data.UnknownEmployeeID = employeeID
		default:
			result.Data.Err = err.Error()
		}
	}

	if containsAny(lowered, holidayDataKeywords) {
		result.Data.Holidays = r.store.Holidays()
	}

	if containsAny(lowered, requestDataKeywords) {
		result.Data.RecentRequests = r.store.RecentRequests(recentRequestLimit)
	}

	if containsAny(lowered, policyDataKeywords) {
		summary := r.store.PolicySummary()
		result.Data.PolicySummary = &summary
	}
}
