package render

// Shader dos prédios: difuso simples com sol fixo e neblina exponencial
// que esconde a borda da janela de streaming.
const cityVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
in vec4 vertexColor;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec2 fragTexCoord;
out vec4 fragColor;
out vec3 fragNormal;
out vec3 fragWorldPos;

void main()
{
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const cityFragmentShader = `
#version 330

in vec2 fragTexCoord;
in vec4 fragColor;
in vec3 fragNormal;
in vec3 fragWorldPos;

uniform sampler2D texture0;
uniform vec4 colDiffuse; // Tint por nó (DrawModelEx)
uniform vec3 camPos;
uniform vec3 fogColor;
uniform float fogDensity;

out vec4 finalColor;

void main()
{
    vec4 texelColor = texture(texture0, fragTexCoord);
    if (texelColor.a < 0.1) discard;

    vec4 baseColor = texelColor * fragColor * colDiffuse;

    // Sol + céu
    vec3 normal = normalize(fragNormal);
    vec3 lightDir = normalize(vec3(0.4, 0.9, 0.25));
    float diff = max(dot(normal, lightDir), 0.0);
    float sky = 0.5 + 0.5 * normal.y;
    vec3 light = vec3(0.30) + vec3(0.25) * sky + vec3(0.55) * diff;

    // Faixas horizontais leves: lembram andares
    float floors = 0.94 + 0.06 * step(0.5, fract(fragWorldPos.y / 3.5));
    vec3 rgb = baseColor.rgb * light * floors;

    float dist = length(camPos - fragWorldPos);
    float fogFactor = clamp(exp(-pow(dist * fogDensity, 2.0)), 0.0, 1.0);

    finalColor = vec4(mix(fogColor, rgb, fogFactor), baseColor.a);
}
`
