package session

// Names maps schedule session identifiers to their program topic names,
// taken from the SIGGRAPH Asia 2025 technical papers program. Read-only.
var Names = map[string]string{
	// Monday, December 15
	"sess104": "3D Reconstruction & Intelligent Geometry",
	"sess105": "Dynamic Generative Video: From Synthesis to Real-Time Editing",
	"sess106": "Global Illumination & Real-Time Rendering",
	"sess107": "High-Performance Simulation Algorithms",
	"sess108": "Mesh Processing",
	"sess109": "Camera Control and Directed Storytelling in Video Generation",
	"sess110": "Material & Texture Modeling",
	"sess111": "Neural & Implicit Representations for Geometry and Physics",
	"sess112": "Creating Digital Humans",
	"sess113": "Smart Process Planning for Manufacturing",
	"sess114": "Visibility & Real-Time Rendering",
	"sess115": "Physically Based Simulation & Dynamic Environments",

	// Tuesday, December 16
	"sess116": "Audio-Driven Facial and Portrait Animation",
	"sess117": "Computational Design & Fabricability",
	"sess118": "Computational Photography & Cameras",
	"sess119": "Sampling, Reconstruction & Variance Reduction",
	"sess120": "Generative 3D Shape Synthesis",
	"sess121": "Image Restoration, Editing & Enhancement",
	"sess122": "Differentiable Rendering & Applications",
	"sess123": "Perception and Performance in AR/VR Systems",
	"sess124": "4D Gaussian Splatting for Dynamic Scene Reconstruction",
	"sess125": "Garment & Cloth Modeling, Simulation and Rendering",
	"sess126": "3D Reconstruction & Rendering",
	"sess127": "Animation, Simulation & Deformation",
	"sess128": "Neural Fields and Surface Reconstruction",
	"sess129": "Vector Graphics & Sketches",
	"sess130": "Intelligent CAD: B-Reps, NURBs & Splines",
	"sess131": "It's All About the Motion",

	// Wednesday, December 17
	"sess132": "Compositional and Layout-Guided Image Synthesis",
	"sess133": "Computational Design & Geometry",
	"sess134": "Hair & Faces",
	"sess135": "Differentiable Physics and Fabrication-Aware Optimization",
	"sess136": "Generative Scenes & Panoramas",
	"sess137": "Human & Robot Animation & Behavior",
	"sess138": "4D & Dynamic Scene Generation and Reconstruction",
	"sess139": "Advanced Light Transport & PDE Solvers",
	"sess140": "Efficient and Robust Algorithms for Geometric Computing",
	"sess141": "3D Reconstruction & View Synthesis",
	"sess142": "Animating Images, Sketches and Text",
	"sess143": "Real-Time Rendering & System Optimization",
	"sess144": "Cameras, Sensors, and Acquisition",
	"sess145": "Generative 3D Modeling",
	"sess146": "Motion Transfer & Control",

	// Thursday, December 18
	"sess147": "Advanced Fluid and Multiphase Simulation",
	"sess148": "Material & Reflectance Modeling",
	"sess149": "Objects in Parts & Articulation",
	"sess150": "Text-to-Image & Customization",
	"sess151": "Expressive and Structured Gaussian Representations",
	"sess152": "Generative Synthesis, Editing & Customization",
	"sess153": "Human Motion Synthesis & Interaction",
	"sess154": "Shape Abstraction and Structural Analysis",
	"sess155": "Advanced Representations and Rendering for 3D Scenes",
	"sess156": "Diffusion-Based Image Editing & Manipulation",
	"sess159": "Geometry Processing & Representations",
}
