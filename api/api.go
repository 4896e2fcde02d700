package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	types "coinflow/api-types"
	coinflow_errors "coinflow/internal"
	"coinflow/internal/db/models/postgres/public/model"
	"coinflow/internal/repository"
	"coinflow/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartApi(port int, userService user.UserService, priceRepository repository.PriceRepository) error {
	router := NewRouter(userService, priceRepository)
	return router.Run(fmt.Sprintf(":%d", port))
}

func NewRouter(userService user.UserService, priceRepository repository.PriceRepository) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/users", func(c *gin.Context) {
		var req types.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}

		created, err := userService.CreateUser(req.Username, req.Email, req.FirstName, req.LastName)
		if err != nil {
			if errors.As(err, &coinflow_errors.ErrDuplicateUser{}) {
				returnErrorJsonCode(err, c, http.StatusConflict)
				return
			}
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusCreated, userResponse(*created))
	})

	router.GET("/users", func(c *gin.Context) {
		users, err := userService.ListUsers()
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		out := make([]types.UserResponse, 0, len(users))
		for _, u := range users {
			out = append(out, userResponse(u))
		}
		c.JSON(http.StatusOK, out)
	})

	router.GET("/users/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid user id %q", c.Param("id")), c, http.StatusBadRequest)
			return
		}

		u, err := userService.GetUserByID(id)
		if err != nil {
			if errors.As(err, &coinflow_errors.ErrUserNotFound{}) {
				returnErrorJsonCode(err, c, http.StatusNotFound)
				return
			}
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, userResponse(*u))
	})

	router.GET("/users/username/:username", func(c *gin.Context) {
		u, err := userService.GetUserByUsername(c.Param("username"))
		if err != nil {
			if errors.As(err, &coinflow_errors.ErrUserNotFound{}) {
				returnErrorJsonCode(err, c, http.StatusNotFound)
				return
			}
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, userResponse(*u))
	})

	router.GET("/prices/latest", func(c *gin.Context) {
		source := c.Query("source")
		if source == "" {
			returnErrorJsonCode(errors.New("missing required query param: source"), c, http.StatusBadRequest)
			return
		}

		records, err := priceRepository.GetLatest(source)
		if err != nil {
			returnErrorJson(err, c)
			return
		}

		c.JSON(http.StatusOK, latestPricesResponse(source, records))
	})

	return router
}

func userResponse(u model.AppUser) types.UserResponse {
	return types.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func latestPricesResponse(source string, records []model.PriceRecord) types.LatestPricesResponse {
	resp := types.LatestPricesResponse{
		Source: source,
		Prices: make([]types.LatestPrice, 0, len(records)),
	}
	for _, r := range records {
		if resp.Bucket == nil {
			bucket := r.TsBucket
			resp.Bucket = &bucket
		}
		resp.Prices = append(resp.Prices, types.LatestPrice{
			Symbol:       r.Symbol,
			CoinID:       r.CoinID,
			Name:         r.Name,
			Price:        r.Price,
			MarketCap:    r.MarketCap,
			PctChange24h: r.PctChange24h,
		})
	}
	return resp
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
