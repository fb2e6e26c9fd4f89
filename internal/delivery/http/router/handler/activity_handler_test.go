package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/session"
	mockrepository "storefront/internal/mocks/repository"
	mockservice "storefront/internal/mocks/service"
	"storefront/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/store/track", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newActivityHandler(t *testing.T) *ActivityHandler {
	t.Helper()

	activityRepo := mockrepository.NewMockActivityRepository(t)
	activityRepo.EXPECT().CreateActivity(mock.Anything, mock.Anything).Return(nil).Maybe()

	publisher := mockservice.NewMockEventPublisher(t)
	publisher.EXPECT().PublishChangeEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	sink := mockservice.NewMockConversionSink(t)
	sink.EXPECT().Track(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := impl.NewActivityService(activityRepo, publisher, sink, session.New(), logger)

	return NewActivityHandler(uc)
}

func TestActivityHandler_Track_MintsSessionToken(t *testing.T) {
	handler := newActivityHandler(t)

	c, rec := newTrackContext(t, `{"activity_type":"page_view","page_path":"/"}`)
	require.NoError(t, handler.Track(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constants.SessionHeader))
}

func TestActivityHandler_Track_EchoesClientSession(t *testing.T) {
	handler := newActivityHandler(t)

	c, rec := newTrackContext(t, `{"activity_type":"add_to_cart","product_name":"Denim jacket"}`)
	c.Request().Header.Set(constants.SessionHeader, "1756300000000-ab12cd34ef")
	require.NoError(t, handler.Track(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "1756300000000-ab12cd34ef", rec.Header().Get(constants.SessionHeader))
}

func TestActivityHandler_Track_RejectsUnknownKind(t *testing.T) {
	handler := newActivityHandler(t)

	c, _ := newTrackContext(t, `{"activity_type":"teleport"}`)
	err := handler.Track(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidActivityKind)
}

func TestActivityHandler_Track_RequiresActivityType(t *testing.T) {
	handler := newActivityHandler(t)

	c, rec := newTrackContext(t, `{"page_path":"/"}`)
	require.NoError(t, handler.Track(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
