package catalog

// registerBuiltins installs the built-in component set:
//
//	display  (2): Markdown, Collapse
//	card     (1): AppCard
//	form     (1): Form
//	media    (3): VideoPlayer, AudioPlayer, ImageGallery
//	feedback (2): Alert, Progress
//	layout   (2): Card, Modal
//	embed    (1): WebView
func (r *Registry) registerBuiltins() {
	r.MustRegister(Schema{
		Type:     TypeMarkdown,
		Category: CategoryDisplay,
		Props: map[string]PropSpec{
			"content":   {Kind: KindString, Default: ""},
			"allowHtml": {Kind: KindBoolean, Default: false},
			"codeOptions": {Kind: KindObject, Default: map[string]any{
				"copyable": true, "showLineNumbers": true, "highlightLines": []any{},
			}},
			"imageOptions": {Kind: KindObject, Default: map[string]any{
				"clickAction": "lightbox", "maxWidth": "100%",
			}},
		},
		Description: "Markdown rich text with tables, code blocks and images",
	})

	r.MustRegister(Schema{
		Type:     "Collapse",
		Category: CategoryDisplay,
		Props: map[string]PropSpec{
			"items":     {Kind: KindArray, Default: []any{}},
			"accordion": {Kind: KindBoolean, Default: false},
			"bordered":  {Kind: KindBoolean, Default: true},
			"gap":       {Kind: KindNumber, Default: float64(0)},
		},
		Description: "Collapsible content panels",
	})

	r.MustRegister(Schema{
		Type:     "AppCard",
		Category: CategoryCard,
		Props: map[string]PropSpec{
			"id":          {Required: true, Kind: KindString, Default: ""},
			"title":       {Required: true, Kind: KindString, Default: ""},
			"url":         {Kind: KindString, Default: ""},
			"description": {Kind: KindString, Default: ""},
			"avatar":      {Kind: KindString, Default: ""},
			"thumbnail":   {Kind: KindString, Default: ""},
			"author_name": {Kind: KindString, Default: ""},
			"type":        {Kind: KindString, Default: ""},
			"view_count":  {Kind: KindNumber, Default: float64(0)},
			"like_count":  {Kind: KindNumber, Default: float64(0)},
		},
		Description: "App or work showcase card",
	})

	r.MustRegister(Schema{
		Type:     TypeForm,
		Category: CategoryForm,
		Props: map[string]PropSpec{
			"title":            {Kind: KindString, Default: ""},
			"description":      {Kind: KindString, Default: ""},
			"layout":           {Kind: KindString, Default: "vertical"},
			"labelWidth":       {Kind: KindNumber, Default: float64(100)},
			"columns":          {Kind: KindNumber, Default: float64(1)},
			"gap":              {Kind: KindNumber, Default: float64(16)},
			"fields":           {Kind: KindArray, Default: []any{}},
			"actions":          {Kind: KindArray, Default: []any{}},
			"actionsAlign":     {Kind: KindString, Default: "right"},
			"submitAction":     {Kind: KindObject},
			"validateOnChange": {Kind: KindBoolean, Default: true},
			"validateOnBlur":   {Kind: KindBoolean, Default: true},
		},
		SupportsActions: true,
		Description:     "Form container with inline fields and actions",
	})

	r.MustRegister(Schema{
		Type:     "VideoPlayer",
		Category: CategoryMedia,
		Props: map[string]PropSpec{
			"src":      {Kind: KindString, Default: ""},
			"poster":   {Kind: KindString, Default: ""},
			"title":    {Kind: KindString, Default: ""},
			"controls": {Kind: KindBoolean, Default: true},
			"autoplay": {Kind: KindBoolean, Default: false},
			"muted":    {Kind: KindBoolean, Default: false},
			"loop":     {Kind: KindBoolean, Default: false},
			"width":    {Kind: KindString, Default: "100%"},
			"height":   {Kind: KindNumber},
		},
		Description: "Video player",
	})

	r.MustRegister(Schema{
		Type:     "AudioPlayer",
		Category: CategoryMedia,
		Props: map[string]PropSpec{
			"src":      {Kind: KindString, Default: ""},
			"title":    {Kind: KindString, Default: ""},
			"controls": {Kind: KindBoolean, Default: true},
			"autoplay": {Kind: KindBoolean, Default: false},
			"loop":     {Kind: KindBoolean, Default: false},
		},
		Description: "Audio player",
	})

	r.MustRegister(Schema{
		Type:     "ImageGallery",
		Category: CategoryMedia,
		Props: map[string]PropSpec{
			"images":         {Kind: KindArray, Default: []any{}},
			"layout":         {Kind: KindString, Default: "grid"},
			"columns":        {Kind: KindNumber, Default: float64(3)},
			"gap":            {Kind: KindNumber, Default: float64(8)},
			"enableLightbox": {Kind: KindBoolean, Default: true},
		},
		Description: "Image gallery in grid or carousel layout",
	})

	r.MustRegister(Schema{
		Type:     "Alert",
		Category: CategoryFeedback,
		Props: map[string]PropSpec{
			"type":        {Kind: KindString, Default: "info"},
			"message":     {Kind: KindString, Default: ""},
			"description": {Kind: KindString, Default: ""},
			"showIcon":    {Kind: KindBoolean, Default: true},
			"closable":    {Kind: KindBoolean, Default: false},
			"actions":     {Kind: KindArray, Default: []any{}},
		},
		SupportsActions: true,
		Description:     "Alert notification banner",
	})

	r.MustRegister(Schema{
		Type:     "Progress",
		Category: CategoryFeedback,
		Props: map[string]PropSpec{
			"value":     {Kind: KindNumber, Default: float64(0)},
			"max":       {Kind: KindNumber, Default: float64(100)},
			"type":      {Kind: KindString, Default: "linear"},
			"label":     {Kind: KindString, Default: ""},
			"showValue": {Kind: KindBoolean, Default: true},
			"status":    {Kind: KindString, Default: "normal"},
		},
		Description: "Linear or circular progress indicator",
	})

	r.MustRegister(Schema{
		Type:     TypeCard,
		Category: CategoryLayout,
		Props: map[string]PropSpec{
			"title":           {Kind: KindString, Default: ""},
			"subtitle":        {Kind: KindString, Default: ""},
			"content":         {Kind: KindString, Default: ""},
			"image":           {Kind: KindObject},
			"layout":          {Kind: KindString, Default: "flex"},
			"direction":       {Kind: KindString, Default: "column"},
			"gap":             {Kind: KindNumber, Default: float64(16)},
			"padding":         {Kind: KindNumber, Default: float64(16)},
			"align":           {Kind: KindString, Default: "stretch"},
			"justify":         {Kind: KindString, Default: "start"},
			"gridColumns":     {Kind: KindNumber, Default: float64(3)},
			"bordered":        {Kind: KindBoolean, Default: true},
			"hoverable":       {Kind: KindBoolean, Default: false},
			"shadow":          {Kind: KindString, Default: "none"},
			"background":      {Kind: KindString},
			"borderRadius":    {Kind: KindNumber, Default: float64(8)},
			"actions":         {Kind: KindArray, Default: []any{}},
			"actionsPosition": {Kind: KindString, Default: "bottom"},
		},
		SupportsChildren: true,
		SupportsActions:  true,
		Description:      "Layout container supporting flex and grid",
	})

	r.MustRegister(Schema{
		Type:     "Modal",
		Category: CategoryLayout,
		Props: map[string]PropSpec{
			"title":        {Kind: KindString, Default: ""},
			"mode":         {Kind: KindString, Default: "modal"},
			"placement":    {Kind: KindString, Default: "right"},
			"width":        {Kind: KindNumber, Default: float64(520)},
			"height":       {Kind: KindNumber},
			"closable":     {Kind: KindBoolean, Default: true},
			"maskClosable": {Kind: KindBoolean, Default: true},
			"footer":       {Kind: KindArray, Default: []any{}},
		},
		SupportsChildren: true,
		SupportsActions:  true,
		Description:      "Modal dialog or drawer",
	})

	r.MustRegister(Schema{
		Type:     TypeWebView,
		Category: CategoryEmbed,
		Props: map[string]PropSpec{
			"url":     {Kind: KindString, Default: ""},
			"html":    {Kind: KindString, Default: ""},
			"width":   {Kind: KindString, Default: "100%"},
			"height":  {Kind: KindNumber, Default: float64(400)},
			"sandbox": {Kind: KindArray, Default: []any{}},
		},
		Description: "Embedded web page (iframe)",
	})
}
