package catalog

// OutputFormat is the encoding every catalog entry is written in.
const OutputFormat = "png"

// requirements holds the per-type source constraints. The minimum
// dimensions must equal the largest output of that type in the tables
// below; TestRequirementsMatchCatalog enforces this.
var requirements = map[ResourceType]Requirement{
	TypeIcon:   {Format: OutputFormat, MinWidth: 1024, MinHeight: 1024},
	TypeSplash: {Format: OutputFormat, MinWidth: 2732, MinHeight: 2732},
}

var resources = map[Platform]map[ResourceType]TypeConfig{
	PlatformAndroid: {
		TypeIcon: {
			NodeName:  "icon",
			NodeAttrs: []string{"src", "density", "width", "height"},
			Images: []ImageSpec{
				{Name: "drawable-ldpi-icon.png", Width: 36, Height: 36, Density: DensityLDPI},
				{Name: "drawable-mdpi-icon.png", Width: 48, Height: 48, Density: DensityMDPI},
				{Name: "drawable-hdpi-icon.png", Width: 72, Height: 72, Density: DensityHDPI},
				{Name: "drawable-xhdpi-icon.png", Width: 96, Height: 96, Density: DensityXHDPI},
				{Name: "drawable-xxhdpi-icon.png", Width: 144, Height: 144, Density: DensityXXHDPI},
				{Name: "drawable-xxxhdpi-icon.png", Width: 192, Height: 192, Density: DensityXXXHDPI},
			},
		},
		TypeSplash: {
			NodeName:  "splash",
			NodeAttrs: []string{"src", "density", "width", "height"},
			Images: []ImageSpec{
				{Name: "drawable-land-ldpi-screen.png", Width: 320, Height: 200, Density: DensityLDPI, Orientation: OrientationLandscape},
				{Name: "drawable-land-mdpi-screen.png", Width: 480, Height: 320, Density: DensityMDPI, Orientation: OrientationLandscape},
				{Name: "drawable-land-hdpi-screen.png", Width: 800, Height: 480, Density: DensityHDPI, Orientation: OrientationLandscape},
				{Name: "drawable-land-xhdpi-screen.png", Width: 1280, Height: 720, Density: DensityXHDPI, Orientation: OrientationLandscape},
				{Name: "drawable-land-xxhdpi-screen.png", Width: 1600, Height: 960, Density: DensityXXHDPI, Orientation: OrientationLandscape},
				{Name: "drawable-land-xxxhdpi-screen.png", Width: 1920, Height: 1280, Density: DensityXXXHDPI, Orientation: OrientationLandscape},
				{Name: "drawable-port-ldpi-screen.png", Width: 200, Height: 320, Density: DensityLDPI, Orientation: OrientationPortrait},
				{Name: "drawable-port-mdpi-screen.png", Width: 320, Height: 480, Density: DensityMDPI, Orientation: OrientationPortrait},
				{Name: "drawable-port-hdpi-screen.png", Width: 480, Height: 800, Density: DensityHDPI, Orientation: OrientationPortrait},
				{Name: "drawable-port-xhdpi-screen.png", Width: 720, Height: 1280, Density: DensityXHDPI, Orientation: OrientationPortrait},
				{Name: "drawable-port-xxhdpi-screen.png", Width: 960, Height: 1600, Density: DensityXXHDPI, Orientation: OrientationPortrait},
				{Name: "drawable-port-xxxhdpi-screen.png", Width: 1280, Height: 1920, Density: DensityXXXHDPI, Orientation: OrientationPortrait},
			},
		},
	},
	PlatformIOS: {
		TypeIcon: {
			NodeName:  "icon",
			NodeAttrs: []string{"src", "width", "height"},
			Images: []ImageSpec{
				{Name: "icon-20.png", Width: 20, Height: 20},
				{Name: "icon-20@2x.png", Width: 40, Height: 40},
				{Name: "icon-20@3x.png", Width: 60, Height: 60},
				{Name: "icon-29.png", Width: 29, Height: 29},
				{Name: "icon-29@2x.png", Width: 58, Height: 58},
				{Name: "icon-29@3x.png", Width: 87, Height: 87},
				{Name: "icon-40.png", Width: 40, Height: 40},
				{Name: "icon-40@2x.png", Width: 80, Height: 80},
				{Name: "icon-40@3x.png", Width: 120, Height: 120},
				{Name: "icon-50.png", Width: 50, Height: 50},
				{Name: "icon-50@2x.png", Width: 100, Height: 100},
				{Name: "icon-57.png", Width: 57, Height: 57},
				{Name: "icon-57@2x.png", Width: 114, Height: 114},
				{Name: "icon-60@2x.png", Width: 120, Height: 120},
				{Name: "icon-60@3x.png", Width: 180, Height: 180},
				{Name: "icon-72.png", Width: 72, Height: 72},
				{Name: "icon-72@2x.png", Width: 144, Height: 144},
				{Name: "icon-76.png", Width: 76, Height: 76},
				{Name: "icon-76@2x.png", Width: 152, Height: 152},
				{Name: "icon-83.5@2x.png", Width: 167, Height: 167},
				{Name: "icon-1024.png", Width: 1024, Height: 1024},
			},
		},
		TypeSplash: {
			NodeName:  "splash",
			NodeAttrs: []string{"src", "width", "height"},
			Images: []ImageSpec{
				{Name: "Default~iphone.png", Width: 320, Height: 480, Orientation: OrientationPortrait},
				{Name: "Default@2x~iphone.png", Width: 640, Height: 960, Orientation: OrientationPortrait},
				{Name: "Default-568h@2x~iphone.png", Width: 640, Height: 1136, Orientation: OrientationPortrait},
				{Name: "Default-667h.png", Width: 750, Height: 1334, Orientation: OrientationPortrait},
				{Name: "Default-736h.png", Width: 1242, Height: 2208, Orientation: OrientationPortrait},
				{Name: "Default-Landscape-736h.png", Width: 2208, Height: 1242, Orientation: OrientationLandscape},
				{Name: "Default-Portrait~ipad.png", Width: 768, Height: 1024, Orientation: OrientationPortrait},
				{Name: "Default-Landscape~ipad.png", Width: 1024, Height: 768, Orientation: OrientationLandscape},
				{Name: "Default-Portrait@2x~ipad.png", Width: 1536, Height: 2048, Orientation: OrientationPortrait},
				{Name: "Default-Landscape@2x~ipad.png", Width: 2048, Height: 1536, Orientation: OrientationLandscape},
				{Name: "Default@2x~universal~anyany.png", Width: 2732, Height: 2732},
			},
		},
	},
}
