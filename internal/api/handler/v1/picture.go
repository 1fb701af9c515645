package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"photocontest-api/internal/api/handler/v1/response"
	"photocontest-api/internal/domain"
)

type PictureService interface {
	Vote(ctx context.Context, pictureID, userID uint) (domain.Vote, error)
	DeletePicture(ctx context.Context, pictureID, actorID uint) error
}

type PictureHandler struct {
	svc PictureService
}

func NewPictureHandler(svc PictureService) *PictureHandler {
	return &PictureHandler{
		svc: svc,
	}
}

func readUploads(files []*multipart.FileHeader) ([]domain.PictureUpload, error) {
	if len(files) == 0 {
		return nil, errors.New("no picture files in the request")
	}

	uploads := make([]domain.PictureUpload, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %q -> %w", header.Filename, err)
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %q -> %w", header.Filename, err)
		}

		uploads = append(uploads, domain.PictureUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	return uploads, nil
}

// HandleVote godoc
// @Summary      Vote for a picture
// @Tags         pictures
// @Produce      json
// @Param        pictureID path       int true "picture ID"
// @Success      201      {object}   domain.Vote
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /pictures/{pictureID}/vote [post]
func (h *PictureHandler) HandleVote(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	pictureID, ok := parseIDParam(ctx, "pictureID")
	if !ok {
		return
	}

	vote, err := h.svc.Vote(ctx.Request.Context(), pictureID, userID)
	if err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleVote -> h.svc.Vote -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, vote)
}

// HandleDeletePicture godoc
// @Summary      Delete a picture (administrators only)
// @Tags         pictures
// @Produce      json
// @Param        pictureID path       int true "picture ID"
// @Success      200      {object}   gin.H
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /pictures/{pictureID} [delete]
func (h *PictureHandler) HandleDeletePicture(ctx *gin.Context) {
	userID, ok := getUserIDFromContext(ctx)
	if !ok {
		return
	}
	pictureID, ok := parseIDParam(ctx, "pictureID")
	if !ok {
		return
	}

	if err := h.svc.DeletePicture(ctx.Request.Context(), pictureID, userID); err != nil {
		response.RenderDomainErr(ctx, fmt.Errorf("v1.HandleDeletePicture -> h.svc.DeletePicture -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "the picture has been deleted"})
}
