package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"

	"subs_manager/internal/entity"
	"subs_manager/internal/entity/generated"
	"subs_manager/internal/gateways/calendar"
	"subs_manager/internal/usecase"
)

func setupRouter(r *gin.Engine, u UseCases) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	{
		v1 := r.Group("api/v1/")
		setupSubscription(v1, u)
		setupSubscriptionsId(v1, u)
		setupSubscriptionsCost(v1, u)
		setupSubscriptionsCalendar(v1, u)
		setupCompanies(v1, u)
		setupSettings(v1, u)
	}
}

func setupSubscription(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		f, err := parseFilter(c)
		if err != nil {
			writeError(c, err)
			return
		}

		subs, err := u.Sub.ListSubsByFilter(c, f)
		if err != nil {
			writeError(c, err)
			return
		}

		resp := make([]generated.Subscription, 0, len(subs))
		for _, s := range subs {
			resp = append(resp, toResponse(s))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.POST("/subscriptions", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		var input *generated.SubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil || input == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorText(err)})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		created, effects, err := u.Sub.RegisterSub(c, fromInput("", input))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toResponse(created))
		u.dispatch(c, effects)
	})

	r.OPTIONS("/subscriptions", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS,GET")
		c.Status(http.StatusNoContent)
	})
}

func setupSubscriptionsId(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		sub, err := u.Sub.GetSubByID(c, strfmt.UUID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(sub))
	})

	r.PUT("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}
		id := strfmt.UUID(c.Param("id"))
		if !strfmt.IsUUID(id.String()) {
			writeError(c, usecase.ErrInvalidID)
			return
		}

		var input *generated.SubscriptionInput
		if err := c.ShouldBindJSON(&input); err != nil || input == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorText(err)})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		updated, effects, err := u.Sub.UpdateSub(c, fromInput(id, input))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(updated))
		u.dispatch(c, effects)
	})

	r.DELETE("/subscriptions/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		deleted, effects, err := u.Sub.DeleteSub(c, strfmt.UUID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		if deleted == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, toResponse(deleted))
		u.dispatch(c, effects)
	})

	r.OPTIONS("/subscriptions/:id", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "PUT,OPTIONS,GET,DELETE")
		c.Status(http.StatusNoContent)
	})
}

func setupSubscriptionsCost(r *gin.RouterGroup, u UseCases) {
	methodNA := func(c *gin.Context) {
		c.Header("Allow", "GET,OPTIONS")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	}
	for _, m := range []string{
		http.MethodPut,
		http.MethodDelete,
	} {
		r.Handle(m, "/subscriptions/cost", methodNA)
	}

	r.GET("/subscriptions/cost", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		f, err := parseFilter(c)
		if err != nil {
			writeError(c, err)
			return
		}

		sum, err := u.Sub.CostSubsByFilter(c, f)
		if err != nil {
			writeError(c, err)
			return
		}
		currency, err := u.Settings.Currency(c)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, toCostSummary(sum, currency))
	})

	r.OPTIONS("/subscriptions/cost", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupSubscriptionsCalendar(r *gin.RouterGroup, u UseCases) {
	r.POST("/subscriptions/:id/calendar", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if _, err := u.Calendar.AddToCalendar(c, strfmt.UUID(c.Param("id"))); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Event added to calendar"})
	})

	r.OPTIONS("/subscriptions/:id/calendar", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS")
		c.Status(http.StatusNoContent)
	})

	r.GET("/subscriptions/:id/calendar.ics", func(c *gin.Context) {
		if !accepts(c.GetHeader("Accept"), "text/calendar") {
			c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept text/calendar only"})
			return
		}
		ev, err := u.Calendar.EventFor(c, strfmt.UUID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+calendar.FileName(ev.UID)+`"`)
		c.Data(http.StatusOK, "text/calendar; charset=utf-8", calendar.Render(ev, u.now()))
	})
}

func setupCompanies(r *gin.RouterGroup, u UseCases) {
	r.GET("/companies", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		companies := u.Catalog.ListCompanies(c.Query("search"))
		resp := make([]generated.Company, 0, len(companies))
		for _, company := range companies {
			resp = append(resp, toCompany(company))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.GET("/companies/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		company, err := u.Catalog.GetCompany(strfmt.UUID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toCompany(company))
	})

	r.GET("/companies/:id/draft", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		draft, err := u.Catalog.DraftFromCompany(strfmt.UUID(c.Param("id")))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDraft(draft))
	})

	r.OPTIONS("/companies", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupSettings(r *gin.RouterGroup, u UseCases) {
	r.GET("/settings", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		currency, err := u.Settings.Currency(c)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, generated.Settings{Currency: &currency})
	})

	r.PUT("/settings", func(c *gin.Context) {
		if !requireAcceptJSON(c) || !requireJSONBody(c) {
			return
		}

		var input *generated.Settings
		if err := c.ShouldBindJSON(&input); err != nil || input == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorText(err)})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		currency, err := u.Settings.SetCurrency(c, *input.Currency)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, generated.Settings{Currency: &currency})
	})

	r.OPTIONS("/settings", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "PUT,OPTIONS,GET")
		c.Status(http.StatusNoContent)
	})
}

// writeError maps use case errors onto HTTP statuses
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
	case errors.Is(err, usecase.ErrInvalidSubscription),
		errors.Is(err, usecase.ErrInvalidFilter),
		errors.Is(err, usecase.ErrInvalidPagination),
		errors.Is(err, usecase.ErrInvalidCurrency):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSubscriptionNotFound),
		errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, usecase.ErrPersistence):
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable", "retryable": true})
	case errors.Is(err, usecase.ErrCalendar):
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not add event to calendar"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindErrorText(err error) string {
	if err == nil {
		return "empty body"
	}
	return err.Error()
}

func accepts(h, mediaType string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == mediaType || mt == "*/*" {
			return true
		}
	}
	return false
}

func acceptsJSON(h string) bool {
	return accepts(h, "application/json")
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}

func requireJSONBody(c *gin.Context) bool {
	if c.ContentType() == "" || c.ContentType() == "application/json" {
		return true
	}
	c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
	return false
}

// dispatch hands committed effects to the reminder dispatcher, if any.
// It runs after the response is written and the dispatcher is expected not to block.
func (u UseCases) dispatch(c *gin.Context, effects []entity.Effect) {
	if u.Effects == nil || len(effects) == 0 {
		return
	}
	u.Effects.Dispatch(c.Request.Context(), effects)
}
