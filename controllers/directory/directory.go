package directoryController

import (
	"strconv"
	"sync"

	"educareer/config"
	"educareer/directory"
	"educareer/middleware"

	"github.com/gofiber/fiber/v2"
)

var (
	clientOnce sync.Once
	client     *directory.Client
)

// directoryClient builds the shared directory client on first use so the
// token cache survives across requests
func directoryClient() *directory.Client {
	clientOnce.Do(func() {
		client = directory.NewClient(directory.Config{
			TokenURL:     config.AppConfig.DirectoryTokenURL,
			APIURL:       config.AppConfig.DirectoryAPIURL,
			ClientID:     config.AppConfig.DirectoryClientID,
			ClientSecret: config.AppConfig.DirectoryClientSecret,
		})
	})
	return client
}

// SearchCourses queries the external course directory
func SearchCourses(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	courses, err := directoryClient().SearchCourses(keyword, page)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Course directory is unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Directory courses fetched successfully!", courses)
}

// GetCourseTags returns the directory's tag taxonomy
func GetCourseTags(c *fiber.Ctx) error {
	tags, err := directoryClient().CourseTags()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Course directory is unavailable!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course tags fetched successfully!", tags)
}

// GetDirectoryToken exposes the cached directory token for admin diagnostics
func GetDirectoryToken(c *fiber.Ctx) error {
	token, err := directoryClient().GetValidToken()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to obtain directory token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Directory token fetched.", fiber.Map{
		"access_token": token,
	})
}
