package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"max.ks1230/finances-tracker/internal/entity/finance"
	"max.ks1230/finances-tracker/internal/model/customerr"
	"max.ks1230/finances-tracker/internal/model/records"
)

const dateLayout = "2006-01-02"

type transactionRequest struct {
	Amount      float64                 `json:"amount"`
	Date        string                  `json:"date"`
	Description string                  `json:"description"`
	Type        finance.TransactionType `json:"type"`
	Category    string                  `json:"category"`
}

// toInput accepts both plain dates and RFC 3339 timestamps.
func (r transactionRequest) toInput(loc *time.Location) (records.TransactionInput, error) {
	in := records.TransactionInput{
		Amount:      r.Amount,
		Description: r.Description,
		Type:        r.Type,
		Category:    r.Category,
	}
	if r.Date == "" {
		return in, nil
	}
	date, err := time.ParseInLocation(dateLayout, r.Date, loc)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, r.Date); err != nil {
			return in, customerr.NewValidation("date", "must be YYYY-MM-DD")
		}
	}
	in.Date = date
	return in, nil
}

func (s *HTTPServer) bindTransaction(c *gin.Context) (records.TransactionInput, bool) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return records.TransactionInput{}, false
	}
	in, err := req.toInput(s.records.Now().Location())
	if err != nil {
		respondError(c, http.StatusBadRequest, customerr.Message(err))
		return records.TransactionInput{}, false
	}
	return in, true
}

func (s *HTTPServer) listTransactions(c *gin.Context) {
	txs, err := s.records.ListTransactions(c.Request.Context(), records.Filter{
		Search: c.Query("search"),
		Type:   finance.TransactionType(c.Query("type")),
		SortBy: records.SortField(c.Query("sortBy")),
	})
	if err != nil {
		handleServiceError(c, err, "fetch transactions")
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (s *HTTPServer) createTransaction(c *gin.Context) {
	in, ok := s.bindTransaction(c)
	if !ok {
		return
	}
	tx, err := s.records.AddTransaction(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "create transaction")
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (s *HTTPServer) getTransaction(c *gin.Context) {
	tx, err := s.records.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "fetch transaction")
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *HTTPServer) updateTransaction(c *gin.Context) {
	in, ok := s.bindTransaction(c)
	if !ok {
		return
	}
	tx, err := s.records.UpdateTransaction(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		handleServiceError(c, err, "update transaction")
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (s *HTTPServer) deleteTransaction(c *gin.Context) {
	if err := s.records.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) listBudgets(c *gin.Context) {
	budgets, err := s.records.ListBudgets(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "fetch budgets")
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func (s *HTTPServer) createBudget(c *gin.Context) {
	var in records.BudgetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	b, err := s.records.AddBudget(c.Request.Context(), in)
	if err != nil {
		handleServiceError(c, err, "create budget")
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (s *HTTPServer) updateBudget(c *gin.Context) {
	var in records.BudgetInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, invalidBodyMessage)
		return
	}
	b, err := s.records.UpdateBudget(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		handleServiceError(c, err, "update budget")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *HTTPServer) deleteBudget(c *gin.Context) {
	if err := s.records.DeleteBudget(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *HTTPServer) getCategories(c *gin.Context) {
	typ := finance.TransactionType(c.Query("type"))
	if typ != "" && !typ.Valid() {
		respondError(c, http.StatusBadRequest, "type must be income or expense")
		return
	}
	c.JSON(http.StatusOK, records.Categories(typ))
}
