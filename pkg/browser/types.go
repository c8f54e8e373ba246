package browser

// Driver is the narrow view of a remote WebDriver session used by this
// server. The production implementation adapts a tebeka/selenium remote
// driver; tests substitute fakes.
type Driver interface {
	// Get navigates to the given URL and blocks until the load completes.
	Get(url string) error

	// Title returns the current page title.
	Title() (string, error)

	// CurrentURL returns the URL of the current page.
	CurrentURL() (string, error)

	// PageSource returns the HTML source of the current page.
	PageSource() (string, error)

	// CurrentWindowHandle returns the backend's handle for the active window.
	CurrentWindowHandle() (string, error)

	// FindElement returns the first element matching the locator.
	FindElement(by, value string) (Element, error)

	// ExecuteScript runs JavaScript in the page context and returns its value.
	ExecuteScript(script string, args []interface{}) (interface{}, error)

	// Screenshot captures the current page as PNG bytes.
	Screenshot() ([]byte, error)

	// Quit terminates the backend session.
	Quit() error
}

// Element is the narrow view of a located page element.
type Element interface {
	Click() error
	TagName() (string, error)
	Text() (string, error)
	GetAttribute(name string) (string, error)
	Location() (Point, error)
	Size() (Size, error)
}

// Point is a page coordinate.
type Point struct {
	X int
	Y int
}

// Size is an element's rendered dimensions.
type Size struct {
	Width  int
	Height int
}

// PageState describes the page after a navigation or click.
type PageState struct {
	URL   string
	Title string
}

// PageDetails describes the current page for get_page_info.
type PageDetails struct {
	URL          string
	Title        string
	SourceLength int
	WindowHandle string
}

// ElementInfo describes a located element.
type ElementInfo struct {
	TagName    string
	Text       string
	Attributes map[string]string
	Location   Point
	Size       Size
}

// attributeNames are the element attributes reported by find_element.
var attributeNames = []string{"id", "class", "name", "href", "src"}
