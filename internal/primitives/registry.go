// Package primitives draws the lit shapes the island is built from: cubes,
// spheres, cylinders and planes, shaded by the sun.
package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Shape names a cached mesh.
type Shape string

const (
	Cube     Shape = "cube"
	Sphere   Shape = "sphere"
	Cylinder Shape = "cylinder"
	Plane    Shape = "plane"
)

// Light is the frame's sun: Dir points toward the light.
type Light struct {
	Dir     [3]float32
	Colour  [3]float32
	Ambient [3]float32
}

// Transform places one instance. A zero Scale component counts as 1.
type Transform struct {
	Position [3]float32
	Scale    [3]float32
	Rotation rl.Quaternion
}

// cached holds mesh and material for a shape. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// centre shifts the mesh so the transform position is its middle.
	centre [3]float32
}

// Registry maps shapes to mesh+material. Meshes are created on first use
// so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache   map[Shape]cached
	viewPos [3]float32
	light   Light
}

// NewRegistry returns a registry with no meshes and a white light from above.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[Shape]cached),
		light: Light{
			Dir:     [3]float32{0.5, 1, 0.5},
			Colour:  [3]float32{1, 0.98, 0.95},
			Ambient: [3]float32{0.2, 0.22, 0.26},
		},
	}
}

// SetView sets camera position and light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos [3]float32, light Light) {
	r.viewPos = viewPos
	r.light = light
}

const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
)

// ensure creates the mesh and lit material for s if not yet cached.
func (r *Registry) ensure(s Shape) (cached, bool) {
	if c, ok := r.cache[s]; ok {
		return c, true
	}
	var c cached
	switch s {
	case Cube:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		// Radius 0.5 so diameter = 1, matching the cube.
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case Cylinder:
		// Raylib cylinder: base Y=0, top Y=height.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.centre = [3]float32{0, -0.5, 0}
	case Plane:
		c.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	default:
		return cached{}, false
	}
	c.mtl = rl.LoadMaterialDefault()
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		c.mtl.Shader = shader
	}
	r.cache[s] = c
	return c, true
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

const (
	lightIntensity   = float32(0.85)
	specularPower    = float32(48.0)
	specularStrength = float32(0.25)
)

// setUniforms uploads view and light to shader (cgo-safe: local arrays).
func (r *Registry) setUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.light.Dir[0], r.light.Dir[1], r.light.Dir[2]}
	amb := [4]float32{r.light.Ambient[0], r.light.Ambient[1], r.light.Ambient[2], 1}
	colour := [3]float32{r.light.Colour[0], r.light.Colour[1], r.light.Colour[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, colour[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{specularStrength}, rl.ShaderUniformFloat)
	}
}

// Matrix returns the model matrix for t with the shape's centring offset:
// offset, scale, rotate, then translate.
func (t Transform) Matrix(centre [3]float32) rl.Matrix {
	sx, sy, sz := t.Scale[0], t.Scale[1], t.Scale[2]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	m := rl.MatrixTranslate(centre[0], centre[1], centre[2])
	m = rl.MatrixMultiply(m, rl.MatrixScale(sx, sy, sz))
	if t.Rotation != (rl.Quaternion{}) {
		m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(t.Rotation))
	}
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position[0], t.Position[1], t.Position[2]))
}

// Draw draws one instance of s tinted by tint. Must be called between
// BeginMode3D and EndMode3D, after SetView. Unknown shapes are skipped.
func (r *Registry) Draw(s Shape, t Transform, tint rl.Color) {
	c, ok := r.ensure(s)
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	r.setUniforms(c.mtl.Shader)
	rl.DrawMesh(c.mesh, c.mtl, t.Matrix(c.centre))
}

// Unload frees every cached mesh and material.
func (r *Registry) Unload() {
	for s, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, s)
	}
}
