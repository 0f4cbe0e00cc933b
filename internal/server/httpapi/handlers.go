package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
	"github.com/innerflame/backend/internal/server/realms"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createReflectionRequest struct {
	UserID   int64          `json:"userId" binding:"required"`
	RealmID  *string        `json:"realmId"`
	Content  string         `json:"content" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

// publicUser is the client-visible account shape; the credential hash never
// leaves the server.
type publicUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type realmWithLessons struct {
	realms.Realm
	Lessons []realms.Lesson `json:"lessons"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or username already taken"})
			return
		}
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": publicUser{ID: user.ID, Email: user.Email, Username: user.Username}})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  publicUser{ID: user.ID, Email: user.Email, Username: user.Username},
		"token": token,
	})
}

func (s *Server) listRealms(c *gin.Context) {
	all := realms.All()
	out := make([]realmWithLessons, 0, len(all))
	for _, r := range all {
		lessons, _ := realms.Lessons(r.ID)
		out = append(out, realmWithLessons{Realm: r, Lessons: lessons})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getProgress(c *gin.Context) {
	userID, ok := s.userIDParam(c)
	if !ok {
		return
	}

	records, err := s.progress.List(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "progress fetch failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress"})
		return
	}
	if records == nil {
		records = []*models.ProgressRecord{}
	}

	c.JSON(http.StatusOK, records)
}

func (s *Server) getProgressSummary(c *gin.Context) {
	userID, ok := s.userIDParam(c)
	if !ok {
		return
	}

	overall, err := s.progress.Aggregate(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "progress summary failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"overallProgress": overall})
}

func (s *Server) updateProgress(c *gin.Context) {
	userID, ok := s.userIDParam(c)
	if !ok {
		return
	}

	realmID := c.Param("realmId")
	if !realms.IsValid(realmID) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown realm"})
		return
	}

	var upd models.ProgressUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid progress data"})
		return
	}

	// Completion is a distinct event: it forces progress to 100 and unlocks
	// the successor realm. A plain merge never unlocks anything.
	var (
		rec *models.ProgressRecord
		err error
	)
	if upd.IsCompleted != nil && *upd.IsCompleted {
		rec, err = s.progress.Complete(c.Request.Context(), userID, realmID)
	} else {
		rec, err = s.progress.Update(c.Request.Context(), userID, realmID, &upd)
	}
	if err != nil {
		s.logger.Error(c.Request.Context(), "progress update failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update progress"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (s *Server) getReflections(c *gin.Context) {
	userID, ok := s.userIDParam(c)
	if !ok {
		return
	}

	entries, err := s.reflections.ListByUser(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "reflections fetch failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reflections"})
		return
	}
	if entries == nil {
		entries = []*models.Reflection{}
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) getRealmReflections(c *gin.Context) {
	userID, ok := s.userIDParam(c)
	if !ok {
		return
	}

	entries, err := s.reflections.ListByUserAndRealm(c.Request.Context(), userID, c.Param("realmId"))
	if err != nil {
		s.logger.Error(c.Request.Context(), "reflections fetch failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reflections"})
		return
	}
	if entries == nil {
		entries = []*models.Reflection{}
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) createReflection(c *gin.Context) {
	var req createReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid reflection data"})
		return
	}

	entry, err := s.reflections.Create(c.Request.Context(), req.UserID, req.RealmID, req.Content, req.Metadata)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid reflection data"})
			return
		}
		s.logger.Error(c.Request.Context(), "reflection create failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create reflection"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (s *Server) userIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return id, true
}
