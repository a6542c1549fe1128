package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lucasmonteiro/occurrence-api/internal/constants"
	"github.com/lucasmonteiro/occurrence-api/internal/database"
	"github.com/lucasmonteiro/occurrence-api/internal/dto"
	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"github.com/lucasmonteiro/occurrence-api/internal/repository"
	"github.com/lucasmonteiro/occurrence-api/internal/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	userService *services.UserService
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Occurrence{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo, zerolog.Nop())
	handler := NewUserHandler(userService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/seed", handler.Seed)
	r.POST("/login", handler.Login)
	r.GET("/user/profile", handler.Profile)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{
		db:          db,
		router:      r,
		userService: userService,
	}
}

func (env userTestEnv) request(t *testing.T, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestSeed_CreatesDefaultUser(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodGet, "/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string      `json:"message"`
		User    dto.UserDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.User.ID)
	require.Equal(t, constants.DefaultUserName, resp.User.Name)
	require.Equal(t, constants.DefaultUserRole, resp.User.Role)
	require.Equal(t, constants.DefaultUserMatricula, resp.User.Matricula)
}

func TestSeed_Idempotent(t *testing.T) {
	env := setupUserTestEnv(t)

	first := env.request(t, http.MethodGet, "/seed", nil)
	require.Equal(t, http.StatusOK, first.Code)
	second := env.request(t, http.MethodGet, "/seed", nil)
	require.Equal(t, http.StatusOK, second.Code)

	var firstResp, secondResp struct {
		User dto.UserDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	require.Equal(t, firstResp.User, secondResp.User)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestLogin_Success(t *testing.T) {
	env := setupUserTestEnv(t)
	_, err := env.userService.SeedDefaultUser()
	require.NoError(t, err)

	w := env.request(t, http.MethodPost, "/login", map[string]string{
		"matricula": constants.DefaultUserMatricula,
		"password":  constants.DefaultUserPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, constants.DefaultUserMatricula, user.Matricula)

	// The credential hash must never be echoed back.
	require.NotContains(t, w.Body.String(), "password")
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupUserTestEnv(t)
	_, err := env.userService.SeedDefaultUser()
	require.NoError(t, err)

	w := env.request(t, http.MethodPost, "/login", map[string]string{
		"matricula": constants.DefaultUserMatricula,
		"password":  "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownMatricula(t *testing.T) {
	env := setupUserTestEnv(t)
	_, err := env.userService.SeedDefaultUser()
	require.NoError(t, err)

	// A missing user is indistinguishable from a wrong password.
	w := env.request(t, http.MethodPost, "/login", map[string]string{
		"matricula": "nope",
		"password":  "x",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	require.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
}

func TestProfile_NotSeeded(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodGet, "/user/profile", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfile_AfterSeed(t *testing.T) {
	env := setupUserTestEnv(t)
	seeded, err := env.userService.SeedDefaultUser()
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/user/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.Equal(t, seeded.ID, user.ID)
}
