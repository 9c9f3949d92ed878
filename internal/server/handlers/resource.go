package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"clinic/internal/common/commonerr"
	"clinic/internal/entities"
	"clinic/pkg/sl"

	"github.com/gin-gonic/gin"
)

// Store is the persistence contract behind a Resource.
type Store[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Resource maps the five CRUD verbs of one entity type onto a Store.
type Resource[T entities.Record[T]] struct {
	name  string
	store Store[T]
}

func NewResource[T entities.Record[T]](name string, store Store[T]) Resource[T] {
	return Resource[T]{
		name:  name,
		store: store,
	}
}

// Register mounts the resource on r under path, e.g. "/doctors".
func (h Resource[T]) Register(r gin.IRouter, path string) {
	g := r.Group(path)

	g.POST("", h.Create())
	g.GET("", h.List())
	g.GET("/:id", h.Get())
	g.PUT("/:id", h.Update())
	g.DELETE("/:id", h.Delete())
}

// Create stores the payload under a store generated id. A client supplied
// id is ignored.
func (h Resource[T]) Create() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload T
		if !h.bind(ctx, &payload) {
			return
		}

		created, err := h.store.Create(ctx.Request.Context(), payload.WithID(0))
		if err != nil {
			h.fail(ctx, err)
			return
		}

		ctx.JSON(http.StatusCreated, created)
	}
}

func (h Resource[T]) List() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		list, err := h.store.List(ctx.Request.Context())
		if err != nil {
			h.fail(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, list)
	}
}

func (h Resource[T]) Get() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := h.id(ctx)
		if !ok {
			return
		}

		rec, err := h.store.Get(ctx.Request.Context(), id)
		if err != nil {
			h.fail(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, rec)
	}
}

// Update overwrites every field of the stored record except its id.
// There is no version check: the last write wins.
func (h Resource[T]) Update() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := h.id(ctx)
		if !ok {
			return
		}

		var payload T
		if !h.bind(ctx, &payload) {
			return
		}

		existing, err := h.store.Get(ctx.Request.Context(), id)
		if err != nil {
			h.fail(ctx, err)
			return
		}

		updated, err := h.store.Update(ctx.Request.Context(), payload.WithID(existing.GetID()))
		if err != nil {
			h.fail(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, updated)
	}
}

// Delete succeeds whether or not the id exists.
func (h Resource[T]) Delete() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := h.id(ctx)
		if !ok {
			return
		}

		if err := h.store.Delete(ctx.Request.Context(), id); err != nil {
			h.fail(ctx, err)
			return
		}

		ctx.Status(http.StatusOK)
	}
}

func (h Resource[T]) id(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, commonerr.New(fmt.Sprintf("invalid %s id", h.name)))
		return 0, false
	}
	return id, true
}

func (h Resource[T]) bind(ctx *gin.Context, payload *T) bool {
	if err := ctx.ShouldBindJSON(payload); err != nil {
		slog.Error("fail to decode request body", slog.String("resource", h.name), sl.Error(err))
		ctx.AbortWithStatusJSON(http.StatusBadRequest, commonerr.New("invalid request body"))
		return false
	}
	return true
}

func (h Resource[T]) fail(ctx *gin.Context, err error) {
	if errors.Is(err, commonerr.ErrNotFound) {
		ctx.AbortWithStatusJSON(http.StatusNotFound, commonerr.New(h.name+" not found"))
		return
	}

	slog.Error("request failed", slog.String("resource", h.name), sl.Error(err))
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, commonerr.New("internal error"))
}
