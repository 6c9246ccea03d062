package display

// litVS/litFS shade with one ambient term, one directional light and up to four point
// lights with linear range falloff. Roughness widens and dims the specular highlight;
// metalness tints it with the base color. Unlit materials output the base color.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
#define MAX_POINT_LIGHTS 4
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec4 ambient;
uniform vec3 sunDir;
uniform vec3 sunColor;
uniform vec3 pointPos[MAX_POINT_LIGHTS];
uniform vec3 pointColor[MAX_POINT_LIGHTS];
uniform float pointRange[MAX_POINT_LIGHTS];
uniform float pointCount;
uniform float roughness;
uniform float metalness;
uniform vec3 emissive;
uniform float unlit;
out vec4 finalColor;

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 radiance, vec3 base) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float power = mix(96.0, 4.0, roughness);
  float strength = (1.0 - roughness) * 0.6;
  vec3 specTint = mix(vec3(1.0), base, metalness);
  float spec = pow(max(dot(N, H), 0.0), power) * strength * (NdotL > 0.0 ? 1.0 : 0.0);
  return (base * (1.0 - 0.5 * metalness) * NdotL + specTint * spec) * radiance;
}

void main() {
  vec3 base = colDiffuse.rgb;
  if (unlit > 0.5) {
    finalColor = vec4(base, colDiffuse.a);
    return;
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 color = ambient.rgb * base;
  color += shade(N, V, normalize(-sunDir), sunColor, base);
  for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
    if (float(i) >= pointCount) break;
    vec3 toLight = pointPos[i] - fragPosition;
    float dist = length(toLight);
    float falloff = clamp(1.0 - dist / pointRange[i], 0.0, 1.0);
    color += shade(N, V, toLight / max(dist, 1e-4), pointColor[i] * falloff * falloff, base);
  }
  color += emissive;
  finalColor = vec4(color, colDiffuse.a);
}
`
)
