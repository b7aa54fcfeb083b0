package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests related to the journal engine.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// RegisterLedgerRoutes registers routes related to accounts and journal entries.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/accounts", h.listAccounts)
		ledger.GET("/balances", h.listBalances)
		ledger.GET("/unposted-entries", h.listUnposted)
		ledger.GET("/trial-balance", h.getTrialBalance)
		ledger.POST("/journal-entries", h.createJournalEntry)
		ledger.GET("/journal-entries/:id", h.getJournalEntry)
		ledger.POST("/journal-entries/:id/post", h.postJournalEntry)
	}
	rg.GET("/organizations/:orgID/journal-entries", h.listForOrganization)
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.Account
// @Security BearerAuth
// @Router /ledger/accounts [get]
func (h *ledgerHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.GetAllAccounts(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// listBalances godoc
// @Summary List account balances
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.AccountBalance
// @Security BearerAuth
// @Router /ledger/balances [get]
func (h *ledgerHandler) listBalances(c *gin.Context) {
	balances, err := h.ledgerService.GetAccountBalances(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to list balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}

// listUnposted godoc
// @Summary List journal entries awaiting posting
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.JournalEntry
// @Security BearerAuth
// @Router /ledger/unposted-entries [get]
func (h *ledgerHandler) listUnposted(c *gin.Context) {
	entries, err := h.ledgerService.GetUnpostedJournalEntries(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to list unposted entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// listForOrganization godoc
// @Summary List journal entries tagged with an organization
// @Tags ledger
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} domain.JournalEntry
// @Security BearerAuth
// @Router /organizations/{orgID}/journal-entries [get]
func (h *ledgerHandler) listForOrganization(c *gin.Context) {
	entries, err := h.ledgerService.GetJournalEntriesForOrganization(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// createJournalEntry godoc
// @Summary Create a manual journal entry
// @Description Stores a balanced entry as pending; it affects balances only once posted
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntry
// @Failure 400 {object} map[string]string "Unbalanced or invalid entry"
// @Security BearerAuth
// @Router /ledger/journal-entries [post]
func (h *ledgerHandler) createJournalEntry(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.CreateJournalEntryRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.ledgerService.CreateJournalEntry(c.Request.Context(), req, userID)
	if err != nil {
		writeError(c, err, "Failed to create journal entry")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal entry created", slog.String("journal_entry_id", entry.JournalEntryID))
	c.JSON(http.StatusCreated, entry)
}

// getJournalEntry godoc
// @Summary Get a journal entry with its lines
// @Tags ledger
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 200 {object} domain.JournalEntry
// @Failure 404 {object} map[string]string "Journal entry not found"
// @Security BearerAuth
// @Router /ledger/journal-entries/{id} [get]
func (h *ledgerHandler) getJournalEntry(c *gin.Context) {
	entry, err := h.ledgerService.GetJournalEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// postJournalEntry godoc
// @Summary Post a pending journal entry
// @Tags ledger
// @Produce json
// @Param id path string true "Journal entry ID"
// @Success 204
// @Failure 409 {object} map[string]string "Already posted"
// @Security BearerAuth
// @Router /ledger/journal-entries/{id}/post [post]
func (h *ledgerHandler) postJournalEntry(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	if err := h.ledgerService.PostJournalEntry(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeError(c, err, "Failed to post journal entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Generates a trial balance over posted entries as of a specific date
// @Tags ledger
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Security BearerAuth
// @Router /ledger/trial-balance [get]
func (h *ledgerHandler) getTrialBalance(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	asOf, err := endOfDay(c.Query("asOf"), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	tb, err := h.ledgerService.GenerateTrialBalance(c.Request.Context(), asOf, userID)
	if err != nil {
		writeError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}
